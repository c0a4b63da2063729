package main

import (
	"context"

	"github.com/spf13/cobra"

	usersRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/users"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/access"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	usersService "github.com/m04kA/SMC-AvailabilityService/internal/service/users"
)

func adminCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the administrator flag of user records",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "grant <uid>",
		Short: "Mark a user as administrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setAdmin(*configPath, args[0], true)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "revoke <uid>",
		Short: "Remove the administrator flag from a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setAdmin(*configPath, args[0], false)
		},
	})

	return cmd
}

func setAdmin(configPath, uid string, isAdmin bool) error {
	cfg, log, err := loadRuntime(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	repo := usersRepo.NewRepository(store)
	svc := usersService.NewService(repo, access.NewPolicy(repo, log), &scheduleService.RealTimeProvider{}, log)

	return svc.SetAdmin(ctx, uid, isAdmin)
}
