// Package cli contains thin adapters that translate CLI operations into
// service calls and format the results.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/workerhub/internal/core/booking"
	"github.com/example/workerhub/internal/core/catalog"
	"github.com/example/workerhub/internal/models"
	"github.com/example/workerhub/internal/ports/primary"
)

// MarketplaceAdapter is a thin adapter that translates CLI operations to MarketplaceService calls.
// It depends only on the MarketplaceService interface, enabling easy testing with mocks.
type MarketplaceAdapter struct {
	service primary.MarketplaceService
	out     io.Writer
}

// NewMarketplaceAdapter creates a new MarketplaceAdapter with the given service.
func NewMarketplaceAdapter(service primary.MarketplaceService, out io.Writer) *MarketplaceAdapter {
	return &MarketplaceAdapter{
		service: service,
		out:     out,
	}
}

// ListWorkers prints the workers matching the filter.
func (a *MarketplaceAdapter) ListWorkers(ctx context.Context, filter catalog.WorkerFilter) []models.Worker {
	workers := a.service.ListWorkers(ctx, filter)

	if len(workers) == 0 {
		fmt.Fprintln(a.out, "No workers match the current filters.")
		return workers
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKILL\tRATE\tEXP\tLOCATION\tRATING\tSTATUS")
	fmt.Fprintln(w, "--\t----\t-----\t----\t---\t--------\t------\t------")
	for _, worker := range workers {
		fmt.Fprintf(w, "%d\t%s\t%s\t₹%d/hr\t%dy\t%s\t%.1f\t%s\n",
			worker.ID,
			worker.Name,
			worker.Skill,
			worker.Rate,
			worker.Experience,
			worker.Location,
			worker.Rating,
			statusLabel(worker.Status),
		)
	}
	w.Flush()

	return workers
}

// ShowWorker prints a single worker profile.
func (a *MarketplaceAdapter) ShowWorker(ctx context.Context, workerID int64) (*models.Worker, error) {
	worker, err := a.service.GetWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	a.printWorker(*worker)
	return worker, nil
}

// AddWorker creates a worker and prints its id.
func (a *MarketplaceAdapter) AddWorker(ctx context.Context, req primary.AddWorkerRequest) (*models.Worker, error) {
	worker, err := a.service.AddWorker(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add worker: %w", err)
	}

	fmt.Fprintf(a.out, "  ID: %d\n", worker.ID)
	return worker, nil
}

// UpdateWorker overwrites fields of a worker and prints the result.
func (a *MarketplaceAdapter) UpdateWorker(ctx context.Context, workerID int64, req primary.UpdateWorkerRequest) (*models.Worker, error) {
	worker, err := a.service.UpdateWorker(ctx, workerID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	a.printWorker(*worker)
	return worker, nil
}

// ListJobs prints the jobs matching the filter.
func (a *MarketplaceAdapter) ListJobs(ctx context.Context, filter catalog.JobFilter) []models.Job {
	jobs := a.service.ListJobs(ctx, filter)

	if len(jobs) == 0 {
		fmt.Fprintln(a.out, "No jobs match the current filters.")
		return jobs
	}

	a.printJobs(jobs)
	return jobs
}

// PostJob posts a job and prints its id.
func (a *MarketplaceAdapter) PostJob(ctx context.Context, req primary.AddJobRequest) (*models.Job, error) {
	job, err := a.service.AddJob(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to post job: %w", err)
	}

	fmt.Fprintf(a.out, "  ID: %d\n", job.ID)
	return job, nil
}

// Book requests a booking and prints its cost.
// Durations above the advisory maximum are accepted with a warning.
func (a *MarketplaceAdapter) Book(ctx context.Context, req primary.CreateBookingRequest) (*models.Booking, error) {
	if booking.ExceedsAdvisoryMax(req.Hours) {
		fmt.Fprintf(a.out, "%s bookings longer than %d hours are unusual\n",
			color.New(color.FgYellow).Sprint("!"), booking.MaxHours)
	}

	b, err := a.service.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "  Booking: %d\n", b.ID)
	fmt.Fprintf(a.out, "  Worker:  %s\n", b.WorkerName)
	fmt.Fprintf(a.out, "  When:    %s %s (%d hours)\n", b.Date, b.StartTime, b.Hours)
	fmt.Fprintf(a.out, "  Total:   ₹%d\n", b.TotalCost)
	return b, nil
}

// ListBookings prints every booking in creation order.
func (a *MarketplaceAdapter) ListBookings(ctx context.Context) []models.Booking {
	bookings := a.service.ListBookings(ctx)

	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings yet.")
		return bookings
	}

	a.printBookings(bookings)
	return bookings
}

// WhoAmI prints the active session.
func (a *MarketplaceAdapter) WhoAmI(ctx context.Context) models.Session {
	sess := a.service.CurrentSession(ctx)

	switch s := sess.(type) {
	case *models.WorkerSession:
		fmt.Fprintf(a.out, "Logged in as worker %s (ID %d)\n", s.Name, s.ID)
	case *models.EmployerSession:
		fmt.Fprintf(a.out, "Logged in as employer %s (ID %d)\n", s.Name, s.ID)
		if s.Company != "" {
			fmt.Fprintf(a.out, "  Company: %s\n", s.Company)
		}
	default:
		fmt.Fprintln(a.out, "Not logged in.")
	}

	return sess
}

// Dashboard prints the dashboard for the active session's account type.
func (a *MarketplaceAdapter) Dashboard(ctx context.Context) error {
	switch a.service.CurrentSession(ctx).(type) {
	case *models.WorkerSession:
		dash, err := a.service.WorkerDashboard(ctx)
		if err != nil {
			return err
		}
		a.printWorker(dash.Worker)
		fmt.Fprintf(a.out, "Incoming bookings (%d)\n", len(dash.Bookings))
		if len(dash.Bookings) > 0 {
			a.printBookings(dash.Bookings)
		}
		return nil

	case *models.EmployerSession:
		dash, err := a.service.EmployerDashboard(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "\nEmployer: %s\n", dash.Employer.Name)
		if dash.Employer.Company != "" {
			fmt.Fprintf(a.out, "Company:  %s\n", dash.Employer.Company)
		}
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Posted jobs (%d)\n", len(dash.Jobs))
		if len(dash.Jobs) > 0 {
			a.printJobs(dash.Jobs)
		}
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "Bookings (%d)\n", len(dash.Bookings))
		if len(dash.Bookings) > 0 {
			a.printBookings(dash.Bookings)
		}
		return nil

	default:
		return fmt.Errorf("not logged in: run 'workerhub login' first")
	}
}

// Admin prints marketplace-wide totals.
func (a *MarketplaceAdapter) Admin(ctx context.Context) *primary.AdminStats {
	stats := a.service.AdminStats(ctx)

	fmt.Fprintln(a.out, "\nMarketplace overview")
	fmt.Fprintf(a.out, "  Workers:  %d\n", stats.WorkerCount)
	fmt.Fprintf(a.out, "  Jobs:     %d\n", stats.JobCount)
	fmt.Fprintf(a.out, "  Bookings: %d\n", stats.BookingCount)
	fmt.Fprintf(a.out, "  Revenue:  ₹%d\n", stats.TotalRevenue)
	fmt.Fprintln(a.out)

	a.printSkillCounts(stats.SkillCounts)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Recent bookings")
	if len(stats.RecentBookings) == 0 {
		fmt.Fprintln(a.out, "  none")
	} else {
		a.printBookings(stats.RecentBookings)
	}

	return stats
}

// Skills prints the number of workers per skill.
func (a *MarketplaceAdapter) Skills(ctx context.Context) []catalog.SkillCount {
	counts := a.service.AdminStats(ctx).SkillCounts
	a.printSkillCounts(counts)
	return counts
}

func (a *MarketplaceAdapter) printWorker(w models.Worker) {
	fmt.Fprintf(a.out, "\nWorker: %d\n", w.ID)
	fmt.Fprintf(a.out, "Name:         %s\n", w.Name)
	fmt.Fprintf(a.out, "Skill:        %s\n", w.Skill)
	fmt.Fprintf(a.out, "Rate:         ₹%d/hr\n", w.Rate)
	fmt.Fprintf(a.out, "Experience:   %d years\n", w.Experience)
	fmt.Fprintf(a.out, "Availability: %s\n", w.Availability)
	fmt.Fprintf(a.out, "Location:     %s\n", w.Location)
	fmt.Fprintf(a.out, "Rating:       %.1f\n", w.Rating)
	fmt.Fprintf(a.out, "Status:       %s\n", statusLabel(w.Status))
	if w.Phone != "" {
		fmt.Fprintf(a.out, "Phone:        %s\n", w.Phone)
	}
	fmt.Fprintln(a.out)
}

func (a *MarketplaceAdapter) printJobs(jobs []models.Job) {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSKILL\tLOCATION\tBUDGET\tHOURS\tPOSTED BY")
	fmt.Fprintln(w, "--\t-----\t-----\t--------\t------\t-----\t---------")
	for _, job := range jobs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t₹%d/hr\t%d\t%s\n",
			job.ID,
			job.Title,
			job.SkillRequired,
			job.Location,
			job.Budget,
			job.Hours,
			job.PostedBy,
		)
	}
	w.Flush()
}

func (a *MarketplaceAdapter) printBookings(bookings []models.Booking) {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tWORKER\tEMPLOYER\tDATE\tSTART\tHOURS\tTOTAL\tSTATUS")
	fmt.Fprintln(w, "--\t------\t--------\t----\t-----\t-----\t-----\t------")
	for _, b := range bookings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t₹%d\t%s\n",
			b.ID,
			b.WorkerName,
			b.EmployerName,
			b.Date,
			b.StartTime,
			b.Hours,
			b.TotalCost,
			b.Status,
		)
	}
	w.Flush()
}

func (a *MarketplaceAdapter) printSkillCounts(counts []catalog.SkillCount) {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SKILL\tWORKERS")
	fmt.Fprintln(w, "-----\t-------")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Skill, c.Count)
	}
	w.Flush()
}

func statusLabel(status string) string {
	switch status {
	case models.WorkerStatusOnline:
		return color.New(color.FgGreen).Sprint(status)
	case models.WorkerStatusOffline:
		return color.New(color.FgHiBlack).Sprint(status)
	default:
		return status
	}
}
