package service

import "career-compass/internal/domain"

// Static market data per stream. Sourced from counselor-reviewed tables;
// update alongside the course lists in the scoring taxonomy.

var streamCareerProspects = map[string][]string{
	domain.StreamScience:    {"High demand in technology and healthcare", "Research opportunities", "Innovation-driven careers"},
	domain.StreamCommerce:   {"Business leadership roles", "Financial sector opportunities", "Entrepreneurship potential"},
	domain.StreamArts:       {"Creative industry growth", "Digital media expansion", "Cultural sector opportunities"},
	domain.StreamVocational: {"Skilled trades demand", "Technical expertise value", "Industry-specific specialization"},
}

var streamSalaryRanges = map[string]string{
	domain.StreamScience:    "₹4-15 LPA (entry to experienced)",
	domain.StreamCommerce:   "₹3-12 LPA (entry to experienced)",
	domain.StreamArts:       "₹2.5-10 LPA (entry to experienced)",
	domain.StreamVocational: "₹2-8 LPA (entry to experienced)",
}

var streamJobMarketTrends = map[string]string{
	domain.StreamScience:    "Growing - High demand for STEM professionals",
	domain.StreamCommerce:   "Stable - Consistent demand across industries",
	domain.StreamArts:       "Evolving - Digital transformation creating new opportunities",
	domain.StreamVocational: "Expanding - Increasing appreciation for skilled trades",
}

// careerPathTemplate is a detailed path before per-user compatibility is
// filled in.
type careerPathTemplate struct {
	Title          string
	Description    string
	RequiredSkills []string
	RequiredTags   []string
	EducationPath  []string
	AverageSalary  string
	JobRoles       []string
}

var streamCareerPaths = map[string][]careerPathTemplate{
	domain.StreamScience: {
		{
			Title:          "Software Engineering",
			Description:    "Develop software applications and systems",
			RequiredSkills: []string{"Programming", "Problem-solving", "Logical thinking"},
			RequiredTags:   []string{"logical-thinking", "technical-skills", "problem-solving"},
			EducationPath:  []string{"B.Tech/B.E in Computer Science", "Internships", "Certifications"},
			AverageSalary:  "₹6-20 LPA",
			JobRoles:       []string{"Software Developer", "System Architect", "Technical Lead"},
		},
		{
			Title:          "Medical Sciences",
			Description:    "Healthcare and medical research",
			RequiredSkills: []string{"Attention to detail", "Helping others", "Science knowledge"},
			RequiredTags:   []string{"science-interest", "helping-others", "attention-to-detail"},
			EducationPath:  []string{"MBBS", "Specialization", "Medical practice license"},
			AverageSalary:  "₹8-25 LPA",
			JobRoles:       []string{"Doctor", "Surgeon", "Medical Researcher"},
		},
	},
	domain.StreamCommerce: {
		{
			Title:          "Business Management",
			Description:    "Lead and manage business operations",
			RequiredSkills: []string{"Leadership", "Communication", "Analytical thinking"},
			RequiredTags:   []string{"leadership", "communication", "analytical-skills"},
			EducationPath:  []string{"BBA/B.Com", "MBA", "Management experience"},
			AverageSalary:  "₹5-18 LPA",
			JobRoles:       []string{"Manager", "Business Analyst", "Consultant"},
		},
	},
	domain.StreamArts: {
		{
			Title:          "Creative Design",
			Description:    "Visual and creative content creation",
			RequiredSkills: []string{"Creativity", "Artistic ability", "Design thinking"},
			RequiredTags:   []string{"creativity", "artistic-ability", "design-thinking"},
			EducationPath:  []string{"B.Des/B.F.A", "Portfolio development", "Industry projects"},
			AverageSalary:  "₹3-12 LPA",
			JobRoles:       []string{"Graphic Designer", "UI/UX Designer", "Creative Director"},
		},
	},
	domain.StreamVocational: {
		{
			Title:          "Technical Trades",
			Description:    "Specialized technical and practical skills",
			RequiredSkills: []string{"Technical skills", "Hands-on learning", "Problem-solving"},
			RequiredTags:   []string{"technical-skills", "hands-on-learning", "practical-skills"},
			EducationPath:  []string{"Diploma/ITI", "Apprenticeship", "Industry certification"},
			AverageSalary:  "₹3-10 LPA",
			JobRoles:       []string{"Technician", "Supervisor", "Technical Specialist"},
		},
	},
}
