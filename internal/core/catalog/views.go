package catalog

import "github.com/example/workerhub/internal/models"

// SkillCount is the number of workers offering a skill.
type SkillCount struct {
	Skill models.Skill
	Count int
}

// WorkerBookings returns the bookings made for a worker.
func WorkerBookings(bookings []models.Booking, workerID int64) []models.Booking {
	var result []models.Booking
	for _, b := range bookings {
		if b.WorkerID == workerID {
			result = append(result, b)
		}
	}
	return result
}

// EmployerBookings returns the bookings made by an employer.
func EmployerBookings(bookings []models.Booking, employerID int64) []models.Booking {
	var result []models.Booking
	for _, b := range bookings {
		if b.EmployerID == employerID {
			result = append(result, b)
		}
	}
	return result
}

// EmployerKey is the PostedBy value that ties jobs to an employer: the
// company, or the employer's name when the session carries no company.
func EmployerKey(es *models.EmployerSession) string {
	if es == nil {
		return ""
	}
	if es.Company != "" {
		return es.Company
	}
	return es.Name
}

// EmployerJobs returns the jobs posted under a company name.
// PostedBy is a plain string match, not a foreign key.
func EmployerJobs(jobs []models.Job, company string) []models.Job {
	var result []models.Job
	for _, j := range jobs {
		if j.PostedBy == company {
			result = append(result, j)
		}
	}
	return result
}

// SkillCounts counts workers per skill in the enumerated skill order.
// Workers with a skill outside the set (placeholders) are not counted.
func SkillCounts(workers []models.Worker) []SkillCount {
	counts := make(map[models.Skill]int, len(workers))
	for _, w := range workers {
		counts[w.Skill]++
	}

	skills := models.Skills()
	result := make([]SkillCount, len(skills))
	for i, s := range skills {
		result[i] = SkillCount{Skill: s, Count: counts[s]}
	}
	return result
}

// TotalRevenue sums the frozen total cost of all bookings.
func TotalRevenue(bookings []models.Booking) int {
	total := 0
	for _, b := range bookings {
		total += b.TotalCost
	}
	return total
}

// RecentBookings returns up to n of the latest bookings, newest first.
func RecentBookings(bookings []models.Booking, n int) []models.Booking {
	if n <= 0 {
		return nil
	}
	start := len(bookings) - n
	if start < 0 {
		start = 0
	}

	result := make([]models.Booking, 0, len(bookings)-start)
	for i := len(bookings) - 1; i >= start; i-- {
		result = append(result, bookings[i])
	}
	return result
}
