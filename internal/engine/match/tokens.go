package match

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// Token is a vocabulary term found in a job ad.
type Token struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// vocabulary is scanned in declaration order.
var vocabulary = []string{
	// languages
	"javascript", "js", "typescript", "ts", "python", "java", "c#", "csharp", "php", "ruby",
	"go", "golang", "rust", "swift", "kotlin", "scala", "dart", "r", "sql", "html", "css",
	"c++", "cpp", "cplusplus", "c", "perl", "lua", "bash", "powershell",
	// frameworks
	"react", "vue", "angular", "svelte", "next.js", "nextjs", "nuxt", "gatsby", "node.js",
	"nodejs", "express", "nestjs", "django", "flask", "fastapi", "spring", "laravel", "symfony",
	"rails", "asp.net", ".net", "dotnet", "xamarin",
	// databases
	"mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch", "cassandra", "oracle",
	"sql server", "sqlite", "dynamodb", "couchdb", "neo4j",
	// tools
	"docker", "kubernetes", "k8s", "terraform", "ansible", "jenkins", "gitlab", "github", "git",
	"svn", "jira", "confluence", "slack", "aws", "azure", "gcp", "heroku",
	// testing
	"jest", "cypress", "selenium", "playwright", "pytest", "junit", "mocha", "karma",
	// data and ml
	"tensorflow", "pytorch", "pandas", "numpy", "scikit", "spark", "hadoop", "kafka",
	// concepts
	"rest", "graphql", "api", "microservices", "agile", "scrum", "devops", "ci/cd", "tdd", "bdd",
	"oop", "functional programming", "design patterns",
	// erp and business software
	"erp", "warenwirtschaft", "wawi", "sap", "oracle ebs", "dynamics", "navision",
	"individuallösung", "individualsoftware", "custom software",
	// platforms, cms, design, blockchain
	"linux", "windows", "macos", "ios", "android", "flutter", "react native", "wordpress",
	"shopify", "magento", "prestashop", "umbraco", "figma", "sketch", "adobe", "photoshop",
	"illustrator", "blockchain", "ethereum", "solidity", "web3",
	// domain words
	"schnittstelle", "interface", "integration", "dokumentation", "testing", "programmierung",
	"entwicklung", "softwareentwicklung", "anwendungsentwicklung",
}

// tokenLabels fixes the display form of vocabulary terms whose generic
// casing would be wrong.
var tokenLabels = map[string]string{
	"js": "JavaScript", "javascript": "JavaScript", "ts": "TypeScript", "typescript": "TypeScript",
	"html": "HTML", "html5": "HTML5", "css": "CSS", "css3": "CSS3",
	"wawi": "Warenwirtschaftssystem", "wordpress": "WordPress",
	"nodejs": "Node.js", "node.js": "Node.js", "mongodb": "MongoDB",
	"csharp": "C#", "c#": "C#", "c++": "C++", "cpp": "C++", "cplusplus": "C++",
	"go": "Go", "golang": "Go", "r": "R", "c": "C", "rust": "Rust", "java": "Java",
	"ruby": "Ruby", "dart": "Dart", "perl": "Perl", "lua": "Lua", "bash": "Bash",
	"vue": "Vue.js", "nuxt": "Nuxt.js", "nextjs": "Next.js", "nestjs": "NestJS",
	"fastapi": "FastAPI", "asp.net": "ASP.NET", ".net": ".NET", "dotnet": ".NET",
	"mysql": "MySQL", "postgresql": "PostgreSQL", "postgres": "PostgreSQL",
	"sql server": "SQL Server", "sqlite": "SQLite", "dynamodb": "DynamoDB",
	"couchdb": "CouchDB", "neo4j": "Neo4j", "k8s": "Kubernetes", "git": "Git", "gitlab": "GitLab",
	"github": "GitHub", "jira": "Jira", "jest": "Jest", "junit": "JUnit", "pytest": "pytest",
	"tensorflow": "TensorFlow", "pytorch": "PyTorch", "numpy": "NumPy", "scikit": "Scikit-learn",
	"graphql": "GraphQL", "ci/cd": "CI/CD", "devops": "DevOps", "powershell": "PowerShell",
	"ios": "iOS", "macos": "macOS", "react native": "React Native", "oracle ebs": "Oracle EBS",
	"functional programming": "Functional Programming", "design patterns": "Design Patterns",
	"custom software": "Custom Software", "web3": "Web3", "rest": "REST", "rails": "Rails",
	"spring": "Spring", "slack": "Slack", "kafka": "Kafka", "spark": "Spark",
}

// shadowed strips longer terms that would otherwise also satisfy a shorter
// one, so "C#" does not report "C".
var shadowed = map[string]*regexp.Regexp{
	"c": regexp.MustCompile(`(?i)c(\+\+|#)`),
}

// ExtractTokens returns the vocabulary terms occurring in adText as whole
// words, in vocabulary order and unique by label key.
func ExtractTokens(adText string) []Token {
	tokens := []Token{}
	if strings.TrimSpace(adText) == "" {
		return tokens
	}
	seen := make(map[string]bool)
	for _, term := range vocabulary {
		text := adText
		if re, ok := shadowed[term]; ok {
			text = re.ReplaceAllString(text, " ")
		}
		if !textnorm.ContainsWord(text, term) {
			continue
		}
		label := tokenLabel(term)
		key := textnorm.LabelKey(label)
		if seen[term] || seen[key] {
			continue
		}
		seen[term] = true
		seen[key] = true
		tokens = append(tokens, Token{Key: term, Label: label})
	}
	return tokens
}

func tokenLabel(term string) string {
	if label, ok := tokenLabels[term]; ok {
		return label
	}
	if strings.Contains(term, ".") {
		return textnorm.TitleSegments(term)
	}
	if len(term) <= 4 {
		return strings.ToUpper(term)
	}
	return textnorm.TitleWord(term)
}
