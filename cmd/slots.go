package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	usersRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/users"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/access"
	scheduleService "github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

func slotsCmd(configPath *string) *cobra.Command {
	var (
		date string
		days int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print available slots derived from the stored schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
			}

			cfg, log, err := loadRuntime(*configPath)
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

			// Только чтение: без кэша, событий и идентичности
			svc := scheduleService.NewService(
				scheduleRepo.NewRepository(store),
				nil,
				middleware.IdentityProvider{},
				access.NewPolicy(usersRepo.NewRepository(store), log),
				nil,
				metrics.Nop{},
				&scheduleService.RealTimeProvider{},
				log,
			)
			uc := getAvailableSlotsUC.NewUseCase(svc, metrics.Nop{}, log)

			result, err := uc.Execute(ctx, &getAvailableSlotsUC.Request{Date: start, Days: days})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.UsingDefaults {
				fmt.Fprintf(out, "# default schedule in use: %s\n", result.Message)
			}
			for _, day := range result.Days {
				labels := make([]string, len(day.Slots))
				for i, slot := range day.Slots {
					labels[i] = slot.Label()
				}
				name := domain.DayNames[availability.WeekdayIndex(day.Date)]
				if !day.IsWorkDay {
					fmt.Fprintf(out, "%s %s: closed\n", day.Date.Format(domain.DateFormat), name)
					continue
				}
				fmt.Fprintf(out, "%s %s: %s\n", day.Date.Format(domain.DateFormat), name, strings.Join(labels, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(domain.DateFormat), "First date, YYYY-MM-DD")
	cmd.Flags().IntVar(&days, "days", 1, fmt.Sprintf("Number of days, 1..%d", getAvailableSlotsUC.MaxDays))
	return cmd
}
