package wikipedia

import "regexp"

// subjectTitleMappings maps catalog display titles to their Wikipedia page
// titles where the derived title would miss.
var subjectTitleMappings = map[string]string{
	"Data Structures & Algorithms":                    "Data_structure",
	"Object-Oriented Programming":                     "Object-oriented_programming",
	"Database Management Systems":                     "Database",
	"Full-Stack Web Development":                      "Web_development",
	"System Design & Architecture":                    "Software_architecture",
	"Design Patterns & SOLID Principles":              "Software_design_pattern",
	"Operating Systems Fundamentals":                  "Operating_system",
	"Computer Networks & Protocols":                   "Computer_network",
	"Digital Logic & Circuit Design":                  "Digital_electronics",
	"Signals & Systems":                               "Signal_processing",
	"Communication Systems":                           "Telecommunications",
	"Microcontroller Programming & Embedded Systems":  "Embedded_system",
	"Power Systems & Electrical Machines":             "Electric_power_system",
	"Antennas & Propagation":                          "Antenna_(radio)",
	"Computer-Aided Design (CAD) & 3D Modeling":       "Computer-aided_design",
	"Finite Element Analysis (FEA)":                   "Finite_element_method",
	"Manufacturing Processes & Processes Engineering": "Manufacturing",
	"Mechanics of Materials":                          "Strength_of_materials",
	"Thermodynamics & Heat Transfer":                  "Thermodynamics",
	"Fluid Mechanics":                                 "Fluid_mechanics",
	"Machine Learning Fundamentals":                   "Machine_learning",
	"Deep Learning & Neural Networks":                 "Deep_learning",
	"Statistics & Probability":                        "Statistics",
	"Data Engineering & Big Data":                     "Data_engineering",
	"Natural Language Processing":                     "Natural_language_processing",
	"Computer Vision":                                 "Computer_vision",
	"Cybersecurity Fundamentals":                      "Computer_security",
	"Network Security":                                "Network_security",
	"Application Security":                            "Application_security",
	"CI/CD & DevOps Pipeline":                         "DevOps",
	"Containerization & Docker":                       "Docker_(software)",
	"Cloud Computing with AWS":                        "Cloud_computing",
	"Infrastructure as Code (IaC)":                    "Infrastructure_as_code",
	"Technical Communication & Presentation":          "Technical_writing",
	"Technical Leadership & Team Management":          "Technical_lead",
	"Agile & Scrum Methodologies":                     "Agile_software_development",
	"IoT Systems & Edge Computing":                    "Internet_of_things",
	"Blockchain & Distributed Ledger Technology":      "Blockchain",
	"Quantum Computing Fundamentals":                  "Quantum_computing",
	"Augmented Reality & Virtual Reality":             "Virtual_reality",
	"Linear Algebra for Engineers":                    "Linear_algebra",
	"Calculus & Differential Equations":               "Calculus",
	"Version Control & Git":                           "Git",
	"Software Testing & Quality Assurance":            "Software_testing",
}

var (
	titleSpacePattern   = regexp.MustCompile(`\s+`)
	titleUnsafePattern  = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// SubjectPageTitle resolves a catalog display title to a Wikipedia page
// title, deriving one (underscored, alphanumeric) when no mapping exists.
func SubjectPageTitle(subjectTitle string) string {
	if mapped, ok := subjectTitleMappings[subjectTitle]; ok {
		return mapped
	}
	derived := titleSpacePattern.ReplaceAllString(subjectTitle, "_")
	return titleUnsafePattern.ReplaceAllString(derived, "")
}
