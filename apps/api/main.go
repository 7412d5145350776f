package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/brainaspire/academia/apps/api/echo"
	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/fee"
	"github.com/brainaspire/academia/core/student"
	"github.com/brainaspire/academia/core/teacher"
	"github.com/brainaspire/academia/core/user"
	emailsvc "github.com/brainaspire/academia/services/email"
	logsvc "github.com/brainaspire/academia/services/logger"
	"github.com/brainaspire/academia/storage/database"
	sqlxrepos "github.com/brainaspire/academia/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(std, err)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up DB
	db, err := database.Open(conf)
	errAndDie(std, err)
	defer db.Close()
	errAndDie(std, database.Ping(db))

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	var (
		userRepo    = sqlxrepos.NewUserRepository(db)
		studentRepo = sqlxrepos.NewStudentRepository(db)
		teacherRepo = sqlxrepos.NewTeacherRepository(db)
		subjectRepo = sqlxrepos.NewSubjectRepository(db)
		configRepo  = sqlxrepos.NewConfigRepository(db)
	)

	var (
		userSvc    user.Service    = user.NewService(userRepo, logger)
		feeSvc     fee.Service     = fee.NewService(configRepo, conf.CourseEndDates, logger)
		studentSvc student.Service = student.NewService(studentRepo, subjectRepo, userSvc, feeSvc, mailSvc, logger)
		teacherSvc teacher.Service = teacher.NewService(teacherRepo, subjectRepo, userSvc, mailSvc, logger)
	)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:       conf.Server.Address(),
			Conf:       conf,
			Logger:     logger,
			UserSvc:    userSvc,
			FeeSvc:     feeSvc,
			StudentSvc: studentSvc,
			TeacherSvc: teacherSvc,
			SignalShutdown: func() {
				shutdown <- syscall.SIGTERM
			},
		},
	)
	go app.Start()

	sig := <-shutdown
	logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = app.Stop(ctx); err != nil {
		logger.Error("graceful shutdown failed", err)
	}
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatalf("%+v", err)
	}
}
