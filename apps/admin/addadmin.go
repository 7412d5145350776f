package main

import (
	"context"

	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/user"
)

// addAdmin updates or creates an admin user holding all roles.
func (cli *commandLine) addAdmin(uname, pwd string) error {
	ctx := context.Background()
	uname = core.CleanString(uname, true /* lower */)

	usr, err := cli.usrRepo.GetUserByUsername(ctx, uname)
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		usr = user.User{Username: uname}
	}
	usr.Roles = user.AllRoles
	usr.SetActive(true)
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}

	if usr.ID == "" {
		usr, err = cli.usrRepo.CreateUser(ctx, usr)
	} else {
		usr, err = cli.usrRepo.UpdateUser(ctx, usr)
	}
	if err != nil {
		return err
	}

	for _, role := range usr.Roles {
		if err := cli.usrRepo.AddUserRole(ctx, usr.ID, role); err != nil {
			return err
		}
	}
	return nil
}
