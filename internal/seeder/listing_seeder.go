package seeder

import (
	"internscout/internal/domain/listing"
	"internscout/internal/repository/memory"
)

// SeedListings loads the demo internship catalog into the repository.
func SeedListings(repo *memory.ListingRepository) {
	repo.Seed(Catalog())
}

// Catalog returns the static internship dataset. In a real deployment this
// would come from a database or an ingestion pipeline.
func Catalog() []listing.Listing {
	return []listing.Listing{
		{
			ID:              "int-001",
			Title:           "Frontend Developer Intern",
			Company:         "TechStart India",
			Location:        "Bangalore",
			RequiredSkills:  []string{"React", "JavaScript", "CSS", "HTML", "TypeScript"},
			Description:     "Join our frontend team to build modern web applications using React and TypeScript. You will work on real customer-facing features and learn from experienced engineers.",
			Role:            "frontend",
			Type:            "summer",
			ApplicationLink: "https://techstart.example.com/careers/frontend-intern",
			ContactEmail:    "hr@techstart.example.com",
			Stipend:         "₹25,000/month",
			Duration:        "3 months",
		},
		{
			ID:              "int-002",
			Title:           "Backend Engineering Intern",
			Company:         "CloudNine Solutions",
			Location:        "Remote",
			RequiredSkills:  []string{"Node.js", "Python", "PostgreSQL", "REST APIs", "Docker"},
			Description:     "Work on scalable backend systems serving millions of users. Learn about microservices, cloud infrastructure, and database optimization.",
			Role:            "backend",
			Type:            "summer",
			ApplicationLink: "https://cloudnine.example.com/internships",
			ContactEmail:    "talent@cloudnine.example.com",
			Stipend:         "₹30,000/month",
			Duration:        "3 months",
		},
		{
			ID:              "int-003",
			Title:           "Data Science Intern",
			Company:         "AnalyticsHub",
			Location:        "Mumbai",
			RequiredSkills:  []string{"Python", "Machine Learning", "Pandas", "SQL", "Data Visualization"},
			Description:     "Apply machine learning to real business problems. Work with large datasets and build predictive models that drive business decisions.",
			Role:            "data-science",
			Type:            "full-time",
			ApplicationLink: "https://analyticshub.example.com/careers",
			ContactEmail:    "careers@analyticshub.example.com",
			Stipend:         "₹35,000/month",
			Duration:        "6 months",
		},
		{
			ID:              "int-004",
			Title:           "Full Stack Developer Intern",
			Company:         "StartupXYZ",
			Location:        "Hyderabad",
			RequiredSkills:  []string{"React", "Node.js", "MongoDB", "JavaScript", "Git"},
			Description:     "Be part of a fast-moving startup team. Work on both frontend and backend, ship features quickly, and see your code in production within days.",
			Role:            "fullstack",
			Type:            "summer",
			ApplicationLink: "https://startupxyz.example.com/join",
			ContactEmail:    "jobs@startupxyz.example.com",
			Stipend:         "₹20,000/month",
			Duration:        "2 months",
		},
		{
			ID:              "int-005",
			Title:           "Machine Learning Intern",
			Company:         "AI Labs India",
			Location:        "Bangalore",
			RequiredSkills:  []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "Deep Learning"},
			Description:     "Research and implement state-of-the-art ML models. Work on computer vision and NLP projects with mentorship from PhD researchers.",
			Role:            "ml",
			Type:            "full-time",
			ApplicationLink: "https://ailabs.example.com/internships",
			ContactEmail:    "research@ailabs.example.com",
			Stipend:         "₹40,000/month",
			Duration:        "6 months",
		},
		{
			ID:              "int-006",
			Title:           "DevOps Intern",
			Company:         "InfraCloud",
			Location:        "Remote",
			RequiredSkills:  []string{"Docker", "Kubernetes", "AWS", "Linux", "CI/CD"},
			Description:     "Learn cloud infrastructure and DevOps practices. Help automate deployments and improve system reliability for enterprise clients.",
			Role:            "devops",
			Type:            "part-time",
			ApplicationLink: "https://infracloud.example.com/careers",
			ContactEmail:    "hiring@infracloud.example.com",
			Stipend:         "₹15,000/month",
			Duration:        "4 months",
		},
		{
			ID:              "int-007",
			Title:           "Mobile App Developer Intern",
			Company:         "AppFactory",
			Location:        "Pune",
			RequiredSkills:  []string{"React Native", "JavaScript", "iOS", "Android", "Mobile UI"},
			Description:     "Build cross-platform mobile apps used by thousands of users. Learn mobile development best practices and app store deployment.",
			Role:            "mobile",
			Type:            "summer",
			ApplicationLink: "https://appfactory.example.com/internships",
			ContactEmail:    "hr@appfactory.example.com",
			Stipend:         "₹22,000/month",
			Duration:        "3 months",
		},
		{
			ID:              "int-008",
			Title:           "UI/UX Design Intern",
			Company:         "DesignStudio",
			Location:        "Delhi",
			RequiredSkills:  []string{"Figma", "UI Design", "UX Research", "Prototyping", "CSS"},
			Description:     "Design beautiful and intuitive user interfaces. Conduct user research and create design systems for web and mobile products.",
			Role:            "design",
			Type:            "part-time",
			ApplicationLink: "https://designstudio.example.com/join-us",
			ContactEmail:    "design@designstudio.example.com",
			Stipend:         "₹18,000/month",
			Duration:        "3 months",
		},
		{
			ID:              "int-009",
			Title:           "Backend Developer Intern (Python)",
			Company:         "DataFlow Systems",
			Location:        "Chennai",
			RequiredSkills:  []string{"Python", "Django", "PostgreSQL", "REST APIs", "Redis"},
			Description:     "Build robust backend services using Python and Django. Work on data pipelines and API development for enterprise clients.",
			Role:            "backend",
			Type:            "summer",
			ApplicationLink: "https://dataflow.example.com/careers",
			ContactEmail:    "jobs@dataflow.example.com",
			Stipend:         "₹28,000/month",
			Duration:        "3 months",
		},
		{
			ID:              "int-010",
			Title:           "Cloud Engineering Intern",
			Company:         "SkyCompute",
			Location:        "Remote",
			RequiredSkills:  []string{"AWS", "Azure", "Terraform", "Python", "Linux"},
			Description:     "Learn enterprise cloud architecture. Help design and implement cloud solutions for Fortune 500 companies.",
			Role:            "cloud",
			Type:            "full-time",
			ApplicationLink: "https://skycompute.example.com/internships",
			ContactEmail:    "talent@skycompute.example.com",
			Stipend:         "₹32,000/month",
			Duration:        "6 months",
		},
		{
			ID:              "int-011",
			Title:           "Software Engineer Intern",
			Company:         "CodeCraft",
			Location:        "Bangalore",
			RequiredSkills:  []string{"Java", "Spring Boot", "MySQL", "Git", "Agile"},
			Description:     "Join a team building enterprise software solutions. Learn software engineering best practices and work in an agile environment.",
			Role:            "backend",
			Type:            "summer",
			ApplicationLink: "https://codecraft.example.com/careers",
			ContactEmail:    "hr@codecraft.example.com",
			Stipend:         "₹25,000/month",
			Duration:        "3 months",
		},
		{
			ID:              "int-012",
			Title:           "AI Research Intern",
			Company:         "DeepMind India",
			Location:        "Bangalore",
			RequiredSkills:  []string{"Python", "Deep Learning", "Research", "PyTorch", "NLP"},
			Description:     "Contribute to cutting-edge AI research. Work on publications and novel ML architectures with world-class researchers.",
			Role:            "ml",
			Type:            "full-time",
			ApplicationLink: "https://deepmind.example.com/research-internships",
			ContactEmail:    "research@deepmind.example.com",
			Stipend:         "₹50,000/month",
			Duration:        "6 months",
		},
		{
			ID:              "int-013",
			Title:           "Frontend Intern (Vue.js)",
			Company:         "WebWizards",
			Location:        "Noida",
			RequiredSkills:  []string{"Vue.js", "JavaScript", "CSS", "HTML", "Vuex"},
			Description:     "Build modern SPAs using Vue.js. Work on customer-facing dashboards and internal tools.",
			Role:            "frontend",
			Type:            "part-time",
			ApplicationLink: "https://webwizards.example.com/jobs",
			ContactEmail:    "careers@webwizards.example.com",
			Stipend:         "₹15,000/month",
			Duration:        "4 months",
		},
		{
			ID:              "int-014",
			Title:           "Data Analyst Intern",
			Company:         "InsightsPro",
			Location:        "Mumbai",
			RequiredSkills:  []string{"SQL", "Excel", "Python", "Data Visualization", "Tableau"},
			Description:     "Analyze business data and create actionable insights. Build dashboards and reports for executive leadership.",
			Role:            "data-science",
			Type:            "summer",
			ApplicationLink: "https://insightspro.example.com/internships",
			ContactEmail:    "hr@insightspro.example.com",
			Stipend:         "₹20,000/month",
			Duration:        "2 months",
		},
		{
			ID:              "int-015",
			Title:           "Cybersecurity Intern",
			Company:         "SecureNet",
			Location:        "Remote",
			RequiredSkills:  []string{"Security", "Linux", "Networking", "Python", "Penetration Testing"},
			Description:     "Learn about enterprise security. Assist with vulnerability assessments and security audits.",
			Role:            "security",
			Type:            "part-time",
			ApplicationLink: "https://securenet.example.com/careers",
			ContactEmail:    "security@securenet.example.com",
			Stipend:         "₹18,000/month",
			Duration:        "4 months",
		},
	}
}
