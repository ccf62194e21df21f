package match

// KeywordDefinition is a curated requirement: it fires when any pattern
// occurs in the ad as a whole word and is reported under Label.
type KeywordDefinition struct {
	Label    string
	Patterns []string
}

// Definitions is the curated requirement list, evaluated in order.
var Definitions = []KeywordDefinition{
	// frontend
	{"JavaScript", []string{"javascript", "js"}},
	{"TypeScript", []string{"typescript", "ts"}},
	{"HTML / HTML5", []string{"html5", "html"}},
	{"CSS / CSS3", []string{"css3", "css"}},
	{"React", []string{"react"}},
	{"Vue.js", []string{"vue", "vue.js"}},
	{"Angular", []string{"angular"}},
	{"Svelte", []string{"svelte"}},
	{"Next.js", []string{"next.js", "nextjs"}},
	{"Nuxt.js", []string{"nuxt", "nuxt.js"}},
	{"Gatsby", []string{"gatsby"}},
	{"Bootstrap", []string{"bootstrap"}},
	{"Tailwind CSS", []string{"tailwind", "tailwindcss"}},
	{"Sass/SCSS", []string{"sass", "scss"}},
	{"Less", []string{"less"}},

	// backend languages
	{"Python", []string{"python"}},
	{"Java", []string{"java"}},
	{"Go", []string{"golang", "go language"}},
	{"Rust", []string{"rust"}},
	{"C#", []string{"c#", "csharp"}},
	{"PHP", []string{"php"}},
	{"Ruby/Rails", []string{"ruby", "ruby on rails", "rails"}},
	{"Scala", []string{"scala"}},
	{"Kotlin", []string{"kotlin"}},
	{"Swift", []string{"swift"}},
	{"Dart", []string{"dart"}},

	// backend frameworks
	{"Node.js", []string{"node.js", "nodejs", "node js"}},
	{"Express", []string{"express"}},
	{"NestJS", []string{"nest", "nestjs"}},
	{"Django", []string{"django"}},
	{"Flask", []string{"flask"}},
	{"FastAPI", []string{"fastapi"}},
	{"Spring Boot", []string{"spring", "spring boot"}},
	{".NET", []string{".net", "dotnet", "asp.net"}},
	{"Laravel", []string{"laravel"}},
	{"Symfony", []string{"symfony"}},

	// databases
	{"MongoDB", []string{"mongodb", "mongo db"}},
	{"MySQL", []string{"mysql"}},
	{"PostgreSQL", []string{"postgres", "postgresql"}},
	{"Redis", []string{"redis"}},
	{"Elasticsearch", []string{"elasticsearch", "elastic"}},
	{"Cassandra", []string{"cassandra"}},
	{"Oracle DB", []string{"oracle"}},
	{"SQL Server", []string{"sql server"}},
	{"SQLite", []string{"sqlite"}},

	// cloud and devops
	{"AWS", []string{"aws", "amazon web services"}},
	{"Azure", []string{"azure"}},
	{"GCP", []string{"gcp", "google cloud", "google cloud platform"}},
	{"Docker", []string{"docker"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Terraform", []string{"terraform"}},
	{"Ansible", []string{"ansible"}},
	{"Jenkins", []string{"jenkins"}},
	{"CI/CD", []string{"gitlab ci", "github actions"}},
	{"CircleCI", []string{"circleci"}},
	{"Travis CI", []string{"travis"}},

	// data and ml
	{"TensorFlow", []string{"tensorflow"}},
	{"PyTorch", []string{"pytorch"}},
	{"Pandas", []string{"pandas"}},
	{"NumPy", []string{"numpy"}},
	{"Scikit-learn", []string{"scikit", "sklearn"}},
	{"Jupyter", []string{"jupyter"}},
	{"Apache Spark", []string{"spark", "apache spark"}},
	{"Hadoop", []string{"hadoop"}},
	{"Apache Kafka", []string{"kafka"}},

	// design
	{"UX/UI", []string{"ux/ui", "ui/ux"}},
	{"UX", []string{"ux", "user experience"}},
	{"UI", []string{"ui", "user interface"}},
	{"Figma", []string{"figma"}},
	{"Sketch", []string{"sketch"}},
	{"Adobe XD", []string{"adobe xd"}},

	// cms and e-learning
	{"WordPress", []string{"wordpress", "wp"}},
	{"Moodle", []string{"moodle"}},
	{"ILIAS", []string{"ilias"}},
	{"SCORM", []string{"scorm"}},
	{"xAPI", []string{"xapi", "tin can api"}},
	{"H5P", []string{"h5p"}},

	// mobile
	{"React Native", []string{"react native", "react-native"}},
	{"Flutter", []string{"flutter"}},
	{"Android", []string{"android"}},
	{"iOS", []string{"ios"}},

	// testing
	{"Jest", []string{"jest"}},
	{"Cypress", []string{"cypress"}},
	{"Selenium", []string{"selenium"}},
	{"Playwright", []string{"playwright"}},
	{"pytest", []string{"pytest"}},
	{"JUnit", []string{"junit"}},

	// general
	{"Frontend", []string{"frontend", "front-end"}},
	{"Backend", []string{"backend", "back-end"}},
	{"Fullstack", []string{"fullstack", "full-stack", "full stack"}},
	{"API Development", []string{"api", "rest api", "graphql"}},
	{"Microservices", []string{"microservices"}},
	{"Git", []string{"git"}},
}

// definitionEquivalents lists corpus substrings that also prove a pattern.
var definitionEquivalents = map[string][]string{
	"react":      {"mern"},
	"node.js":    {"mern", "node"},
	"nodejs":     {"mern", "node"},
	"node js":    {"mern", "node"},
	"mongodb":    {"mern", "mongo"},
	"mongo db":   {"mern", "mongo"},
	"express":    {"mern"},
	"html5":      {"html"},
	"html":       {"html"},
	"css3":       {"css"},
	"css":        {"css"},
	"javascript": {"javascript", " js ", "js,", "js."},
	"js":         {"javascript", " js ", "js,", "js."},
}

// tokenEquivalents is the reduced set used for job-ad tokens.
var tokenEquivalents = map[string][]string{
	"react":      {"mern"},
	"node.js":    {"mern", "node"},
	"nodejs":     {"mern", "node"},
	"mongodb":    {"mern"},
	"express":    {"mern"},
	"html":       {"html"},
	"html5":      {"html"},
	"css":        {"css"},
	"css3":       {"css"},
	"javascript": {"javascript", " js "},
	"js":         {"javascript", " js "},
}
