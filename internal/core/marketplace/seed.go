package marketplace

import "github.com/example/workerhub/internal/models"

// SeedWorkers returns the fixed worker set used on first start.
func SeedWorkers() []models.Worker {
	return []models.Worker{
		{ID: 1, Name: "Ravi Kumar", Skill: models.SkillWelder, Rate: 300, Experience: 4, Availability: "9am-6pm", Location: "Chennai", Rating: 4.6, Status: models.WorkerStatusOnline},
		{ID: 2, Name: "Imran Khan", Skill: models.SkillPolisher, Rate: 250, Experience: 3, Availability: "10am-7pm", Location: "Hyderabad", Rating: 4.3, Status: models.WorkerStatusOnline},
		{ID: 3, Name: "Suresh Babu", Skill: models.SkillElectrician, Rate: 350, Experience: 6, Availability: "8am-5pm", Location: "Chennai", Rating: 4.8, Status: models.WorkerStatusOnline},
		{ID: 4, Name: "Vijay Singh", Skill: models.SkillCarpenter, Rate: 400, Experience: 5, Availability: "10am-8pm", Location: "Bangalore", Rating: 4.5, Status: models.WorkerStatusOffline},
		{ID: 5, Name: "Arjun Mehta", Skill: models.SkillPainter, Rate: 280, Experience: 4, Availability: "9am-6pm", Location: "Mumbai", Rating: 4.4, Status: models.WorkerStatusOnline},
		{ID: 6, Name: "Ramesh Patil", Skill: models.SkillPlumber, Rate: 320, Experience: 7, Availability: "8am-6pm", Location: "Pune", Rating: 4.7, Status: models.WorkerStatusOnline},
	}
}

// SeedJobs returns the fixed job set used on first start.
func SeedJobs() []models.Job {
	return []models.Job{
		{ID: 101, Title: "Machine polishing for stainless sheets", SkillRequired: models.SkillPolisher, Location: "Chennai", Budget: 250, Hours: 4, Status: models.JobStatusOpen, PostedBy: "ABC Industries"},
		{ID: 102, Title: "Welding work for metal frames", SkillRequired: models.SkillWelder, Location: "Hyderabad", Budget: 300, Hours: 6, Status: models.JobStatusOpen, PostedBy: "XYZ Manufacturing"},
		{ID: 103, Title: "Electrical wiring for new factory", SkillRequired: models.SkillElectrician, Location: "Bangalore", Budget: 350, Hours: 8, Status: models.JobStatusOpen, PostedBy: "Tech Fabricators"},
		{ID: 104, Title: "Wooden furniture assembly", SkillRequired: models.SkillCarpenter, Location: "Chennai", Budget: 400, Hours: 5, Status: models.JobStatusOpen, PostedBy: "Home Decor Ltd"},
	}
}
