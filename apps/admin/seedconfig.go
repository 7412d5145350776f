package main

import (
	"context"

	"github.com/brainaspire/academia/core/fee"
	"github.com/brainaspire/academia/core/student"
	sqlxrepos "github.com/brainaspire/academia/storage/database/sqlx"
)

// Default configuration installed by `admin seedconfig`. Values can be edited
// in the app_config table afterwards.
var (
	defaultFeeConfig = fee.Config{
		Fees: map[int]fee.FeeStructure{
			6:  {AdmissionFee: 1000, FixedAmt: 500, MonthlyFee: 800, CourseDuration: 12},
			7:  {AdmissionFee: 1000, FixedAmt: 500, MonthlyFee: 850, CourseDuration: 12},
			8:  {AdmissionFee: 1000, FixedAmt: 500, MonthlyFee: 900, CourseDuration: 12},
			9:  {AdmissionFee: 1000, FixedAmt: 500, MonthlyFee: 1000, CourseDuration: 12},
			10: {AdmissionFee: 1000, FixedAmt: 500, MonthlyFee: 1100, CourseDuration: 12},
		},
		SubjectPreferenceFee: map[int]float64{
			1: 40,
			2: 60,
			3: 80,
			4: 90,
			5: 100,
		},
	}

	defaultDiscountConfig = fee.DiscountConfig{
		PaymentTypeDiscount: map[string]float64{
			"one_time":  5,
			"two_time":  3,
			"four_time": 0,
		},
		CoachingModeDiscount: map[string]float64{
			"online":  3,
			"offline": 0,
		},
		ScholarshipDiscount: map[string]float64{
			fee.TierHigh:   10,
			fee.TierMedium: 7,
			fee.TierLow:    5,
			fee.TierNone:   0,
		},
	}

	defaultTypeConfig = fee.TypeConfig{
		Types: map[string]fee.FeeType{
			fee.TypeIDOneTime:  {Label: fee.PlanOneTime, Installments: 1, Notes: "full tuition paid upfront"},
			fee.TypeIDTwoTime:  {Label: fee.PlanTwoTime, Installments: 2, Notes: "tuition split in two installments"},
			fee.TypeIDFourTime: {Label: fee.PlanFourTime, Installments: 4, Notes: "tuition split in four installments"},
		},
	}

	defaultCoachingModes = map[string]string{
		"CM01": student.ModeOnline,
		"CM02": student.ModeOffline,
		"CM03": student.ModeOneOnOne,
	}
)

func (cli *commandLine) seedConfig() error {
	ctx := context.Background()

	if err := cli.cfgRepo.SaveConfig(ctx, sqlxrepos.CourseFeeConfigKey, defaultFeeConfig); err != nil {
		return err
	}
	if err := cli.cfgRepo.SaveConfig(ctx, sqlxrepos.DiscountConfigKey, defaultDiscountConfig); err != nil {
		return err
	}
	if err := cli.cfgRepo.SaveConfig(ctx, sqlxrepos.FeeTypeConfigKey, defaultTypeConfig); err != nil {
		return err
	}
	for id, name := range defaultCoachingModes {
		if err := cli.cfgRepo.SaveCoachingMode(ctx, id, name); err != nil {
			return err
		}
	}
	return nil
}
