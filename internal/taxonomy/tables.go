package taxonomy

import "github.com/jonathan/ats-scorer/internal/types"

// Version identifies the built-in tables. Bump it whenever a table changes.
const Version = "2025.1"

// technicalTerms keeps the display casing used in reports.
var technicalTerms = []string{
	// languages
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C++", "C#", "C", "Ruby", "PHP",
	"Swift", "Kotlin", "Scala", "MATLAB", "Perl", "Bash", "Shell", "SQL", "HTML", "CSS",
	"Objective-C", "Dart", "Elixir", "Haskell", "Lua", "Groovy",
	// frameworks and runtimes
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "FastAPI", "Spring",
	"Spring Boot", "Rails", "Laravel", ".NET", "ASP.NET", "Next.js", "Svelte", "jQuery",
	"TensorFlow", "PyTorch", "Keras", "scikit-learn", "Pandas", "NumPy", "Spark", "Hadoop",
	"GraphQL", "REST", "gRPC", "Redux", "Tailwind", "Bootstrap",
	// data stores
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Cassandra", "DynamoDB",
	"SQLite", "Oracle", "Snowflake", "BigQuery", "Kafka", "RabbitMQ",
	// cloud and infrastructure
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
	"CI/CD", "GitHub Actions", "GitLab", "Git", "Linux", "Nginx", "Prometheus", "Grafana",
	"Helm", "Serverless", "Lambda", "EC2", "S3", "CloudFormation", "OpenShift",
	// practices and domains
	"Microservices", "Machine Learning", "Deep Learning", "NLP", "Computer Vision", "Data Science",
	"Data Engineering", "ETL", "DevOps", "SRE", "Agile", "Scrum", "Kanban", "TDD", "OOP",
	"Distributed Systems", "API", "Unit Testing", "Selenium", "Jira", "Tableau", "Power BI",
	"Excel", "Figma", "Blockchain", "Cybersecurity", "OAuth", "LLM",
}

// technicalAliases maps common variants to the canonical display form
var technicalAliases = map[string]string{
	"golang":              "Go",
	"go lang":             "Go",
	"js":                  "JavaScript",
	"ts":                  "TypeScript",
	"k8s":                 "Kubernetes",
	"reactjs":             "React",
	"react.js":            "React",
	"vuejs":               "Vue",
	"vue.js":              "Vue",
	"nodejs":              "Node.js",
	"postgres":            "PostgreSQL",
	"psql":                "PostgreSQL",
	"mongo":               "MongoDB",
	"amazon web services": "AWS",
	"google cloud":        "GCP",
	"sklearn":             "scikit-learn",
	"dotnet":              ".NET",
	"restful":             "REST",
}

var softSkills = []string{
	"leadership", "communication", "teamwork", "collaboration", "problem solving",
	"critical thinking", "time management", "adaptability", "creativity", "attention to detail",
	"interpersonal", "mentoring", "mentorship", "negotiation", "presentation", "public speaking",
	"decision making", "conflict resolution", "emotional intelligence", "organization",
	"analytical", "self-motivated", "ownership", "coaching", "empathy", "flexibility",
}

// atsActionVerbs are the verbs applicant tracking systems commonly weight
var atsActionVerbs = []string{
	"managed", "led", "developed", "implemented", "designed", "built", "created", "launched",
	"delivered", "optimized", "improved", "increased", "reduced", "streamlined", "automated",
	"architected", "spearheaded", "coordinated", "negotiated", "mentored",
}

// atsMetricTerms describe measurable business outcomes
var atsMetricTerms = []string{
	"revenue", "roi", "kpi", "budget", "cost savings", "efficiency", "throughput", "latency",
	"uptime", "conversion", "retention", "growth", "sla", "customer satisfaction", "market share",
}

var industryTerms = []string{
	"stakeholder", "cross-functional", "compliance", "regulatory", "governance", "roadmap",
	"go-to-market", "b2b", "saas", "e-commerce", "fintech", "healthcare", "supply chain",
	"risk management", "product management", "project management", "business intelligence",
	"customer success", "vendor management", "quality assurance", "due diligence", "procurement",
}

var stopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by", "can", "could", "did", "do", "does", "doing", "down", "during", "each", "etc",
	"few", "for", "from", "further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "may", "me", "might", "more", "most", "must", "my", "myself", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves",
	"out", "over", "own", "per", "same", "shall", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then", "there", "these", "they",
	"this", "those", "through", "to", "too", "under", "until", "up", "upon", "us", "very", "via",
	"was", "we", "were", "what", "when", "where", "which", "while", "who", "whom", "why", "will",
	"with", "within", "would", "you", "your", "yours", "yourself", "yourselves",
	// job-posting filler
	"work", "working", "job", "role", "position", "candidate", "candidates", "company", "team",
	"including", "ideal", "looking", "join", "years", "year", "strong", "good", "plus", "using",
	"use", "well", "able", "new", "like", "e.g", "i.e",
}

var strongVerbs = []string{
	"achieved", "architected", "automated", "built", "championed", "created", "delivered",
	"designed", "developed", "directed", "drove", "engineered", "established", "exceeded",
	"expanded", "generated", "grew", "implemented", "improved", "increased", "initiated",
	"launched", "led", "managed", "mentored", "negotiated", "optimized", "orchestrated",
	"overhauled", "pioneered", "reduced", "resolved", "scaled", "shipped", "spearheaded",
	"streamlined", "transformed", "won",
}

var vaguePhrases = []string{
	"responsible for", "assisted with", "helped with", "worked on", "involved in", "duties included",
	"participated in", "tasked with", "in charge of", "handled", "various", "etc",
}

var buzzwords = []string{
	"synergy", "go-getter", "think outside the box", "results-driven", "detail-oriented",
	"team player", "hard worker", "hardworking", "self-starter", "rockstar", "ninja", "guru",
	"best of breed", "dynamic", "passionate", "motivated", "proactive", "value add",
	"thought leader", "game changer",
}

// sectionTitleKeywords is consulted in sectionClassifyOrder
var sectionTitleKeywords = map[types.SectionKind][]string{
	types.SectionExperience:     {"experience", "employment", "work history", "career history", "professional background", "positions held"},
	types.SectionEducation:      {"education", "academic", "degrees", "schooling"},
	types.SectionSkills:         {"skills", "technologies", "competencies", "expertise", "tools", "tech stack", "proficiencies"},
	types.SectionSummary:        {"summary", "profile", "objective", "about me", "about", "overview"},
	types.SectionProjects:       {"projects", "portfolio", "open source"},
	types.SectionCertifications: {"certifications", "certificates", "licenses", "credentials"},
	types.SectionContact:        {"contact", "personal information", "personal details"},
}

var sectionClassifyOrder = []types.SectionKind{
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionSummary,
	types.SectionProjects,
	types.SectionCertifications,
	types.SectionContact,
}

// sectionEvidence are full-text phrases that reveal a section without a matching title
var sectionEvidence = map[types.SectionKind][]string{
	types.SectionExperience: {"work experience", "professional experience", "employment history", "years of experience"},
	types.SectionEducation:  {"university", "college", "bachelor", "master's", "degree", "phd", "diploma"},
	types.SectionSkills:     {"skills:", "technical skills", "proficient in"},
	types.SectionSummary:    {"professional summary", "career objective"},
}

var canonicalOrder = []types.SectionKind{
	types.SectionContact,
	types.SectionSummary,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
	types.SectionProjects,
	types.SectionCertifications,
}
