package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/workerhub/internal/core/booking"
	"github.com/example/workerhub/internal/ports/primary"
	"github.com/example/workerhub/internal/wire"
)

var bookCmd = &cobra.Command{
	Use:   "book [worker-id]",
	Short: "Request a booking for a worker (employers only)",
	Long: `Request a booking for a worker.

The total cost is the worker's hourly rate times the booked hours, fixed at
booking time. Bookings must be at least 2 hours.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWorkerID(args[0])
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		start, _ := cmd.Flags().GetString("start")
		hours, _ := cmd.Flags().GetInt("hours")

		_, err = wire.MarketplaceAdapter().Book(commandContext(), primary.CreateBookingRequest{
			WorkerID:  id,
			Date:      date,
			StartTime: start,
			Hours:     hours,
		})
		return err
	},
}

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List all bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		wire.MarketplaceAdapter().ListBookings(commandContext())
		return nil
	},
}

func init() {
	bookCmd.Flags().String("date", "", "Booking date, e.g. 2024-03-10")
	bookCmd.Flags().String("start", "", "Start time, e.g. 09:00")
	bookCmd.Flags().Int("hours", booking.MinHours, "Duration in hours")
}

// BookCmd returns the book command
func BookCmd() *cobra.Command {
	return bookCmd
}

// BookingsCmd returns the bookings command
func BookingsCmd() *cobra.Command {
	return bookingsCmd
}
