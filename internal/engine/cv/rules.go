package cv

import (
	"strings"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/textnorm"
)

// signals are keyword-presence facts about one CV, computed once and shared
// by every role rule.
type signals struct {
	junior bool

	react, ts, js, frontend, backend, node, mern     bool
	wordpress, design, uxui, ai, content, webDevWord bool

	python, java, golang, rust, csharp, dotnet, php, ruby bool
	kotlin, swift, flutter, dart                          bool

	aws, azure, gcp, docker, kubernetes, terraform, ansible, jenkins, ci, devops, sre bool

	dataScience, ml, tensorflow, pytorch, pandas, numpy, scikit bool
	dataEngineering, bigData, spark, analytics                  bool
	realML, mlOutsideTraining                                   bool

	security                          bool
	android, ios, reactNative, mobile bool
	unity, unreal, gameDev            bool
	blockchain, embedded, cpp, c      bool
	embeddedContext                   bool
	qa, vue, angular, nextjs, svelte  bool
}

func detectSignals(lower string) *signals {
	has := func(subs ...string) bool { return textnorm.ContainsAny(lower, subs...) }
	word := func(terms ...string) bool { return textnorm.ContainsAnyWord(lower, terms...) }
	inTraining := has(inTrainingPhrases...)
	inCourse := has("in weiterbildung", "in training")

	s := &signals{
		react:      has("react"),
		ts:         has("typescript") || word("ts"),
		js:         has("javascript") || word("js"),
		frontend:   has("frontend", "front-end"),
		backend:    has("backend", "back-end", "server", "node.js", "nodejs") || has("api", "express"),
		node:       has("node.js", "nodejs", "node js"),
		mern:       has("mern", "mongodb", "mongo db", "node.js", "react", "express"),
		wordpress:  has("wordpress", "elementor"),
		design:     has("figma", "adobe", "photoshop", "illustrator", "indesign", "design"),
		uxui:       word("ux", "ui") || has("ux/ui", "user experience", "user interface"),
		content:    has("content", "texte", "copywriting", "redaktion", "blog"),
		webDevWord: has("webentwickler", "web developer"),

		python: has("python") || word("py"),
		java:   has("java"),
		golang: has(" golang", "go language") || word("go"),
		rust:   has("rust"),
		csharp: has("c#", "csharp", ".net"),
		dotnet: has(".net", "dotnet", "asp.net"),
		php:    has("php"),
		ruby:   has("ruby", "rails"),

		kotlin:  has("kotlin"),
		swift:   has("swift"),
		flutter: has("flutter"),
		dart:    has("dart"),

		aws:        has("aws", "amazon web services"),
		azure:      has("azure"),
		gcp:        has("gcp", "google cloud"),
		docker:     has("docker"),
		kubernetes: has("kubernetes", "k8s"),
		terraform:  has("terraform"),
		ansible:    has("ansible"),
		jenkins:    has("jenkins"),
		ci:         has("ci/cd", "continuous integration"),
		devops:     has("devops", "dev ops"),
		sre:        has("sre", "site reliability"),

		dataScience:     has("data science", "data scientist"),
		ml:              has("machine learning") || word("ml"),
		tensorflow:      has("tensorflow"),
		pytorch:         has("pytorch"),
		pandas:          has("pandas"),
		numpy:           has("numpy"),
		scikit:          has("scikit", "sklearn"),
		dataEngineering: has("data engineer"),
		bigData:         has("big data", "hadoop", "spark"),
		spark:           has("spark"),
		analytics:       has("data analytics", "data analyst"),

		security: has("cybersecurity", "cyber security", "security engineer",
			"penetration testing", "pen testing", "pentest"),

		android:     has("android"),
		ios:         has("ios", "iphone"),
		reactNative: has("react native", "react-native"),
		mobile:      has("mobile developer", "mobile development"),

		unity:   has("unity"),
		unreal:  has("unreal"),
		gameDev: has("game developer", "game development"),

		blockchain: has("blockchain", "ethereum", "solidity", "web3"),
		embedded: has("embedded", "internet of things", "arduino", "raspberry pi") ||
			(has("iot") && !has(mobileCommunicationPhrases...)),
		embeddedContext: has("embedded", "systems", "firmware"),

		qa:      has("qa", "quality assurance", "testing", "test automation", "jest", "cypress", "selenium"),
		vue:     has("vue"),
		angular: has("angular"),
		nextjs:  has("next.js", "nextjs"),
		svelte:  has("svelte"),
	}

	s.ai = (has("ai") && !inTraining) ||
		has("künstliche intelligenz", "prompt engineer", "chatgpt", "gpt") ||
		(has("machine learning") && !inCourse) ||
		(word("ml") && !inCourse)

	s.mlOutsideTraining = s.ml && !inCourse
	s.realML = s.tensorflow || s.pytorch || s.pandas || s.numpy || s.scikit ||
		(s.ml && !inTraining) ||
		(s.dataScience && !inCourse)

	programming := has("developer", "programming", "entwickler", "software")
	s.cpp = has("c++", "cpp", "cplusplus") && programming
	stripped := strings.NewReplacer("c#", "", "c++", "").Replace(lower)
	s.c = (has(" c ") || bareCRe.MatchString(stripped)) && programming &&
		!has("communication", "kommunikation")

	return s
}

// roleRule adds titles, alternates and directions when its predicate holds.
// Rules run in declaration order and never undo each other.
type roleRule struct {
	name  string
	when  func(s *signals) bool
	apply func(s *signals, r *roleSet)
}

var roleRules = []roleRule{
	{
		name: "frontend",
		when: func(s *signals) bool { return s.react || s.frontend || s.webDevWord },
		apply: func(s *signals, r *roleSet) {
			r.title("Frontend Developer")
			if s.react {
				r.title("React Developer")
			}
			if s.webDevWord {
				r.title("Webentwickler:in")
			}
			if s.junior {
				r.alt("Junior Frontend Developer")
				if s.react {
					r.alt("Junior React Developer")
				}
			} else {
				r.alt("Frontend Engineer")
			}
			if s.ts || s.js {
				r.alt("JavaScript Developer")
				if s.ts {
					r.alt("React / TypeScript Developer")
				}
			}
			r.direction(Frontend)
		},
	},
	{
		name: "backend",
		when: func(s *signals) bool {
			return s.backend || s.python || s.java || s.golang || s.csharp || s.dotnet || s.node || s.php || s.ruby
		},
		apply: func(s *signals, r *roleSet) {
			if !s.frontend || s.backend {
				r.title("Backend Developer")
				r.direction(Backend)
			}
			if s.python && !s.dataScience && !s.ml && !s.ai {
				r.title("Python Developer")
				r.alt("Backend Developer (Python)")
			}
			if s.java {
				r.title("Java Developer")
				r.alt("Backend Developer (Java)")
			}
			if s.golang {
				r.title("Go Developer")
				r.alt("Backend Developer (Go)")
			}
			if s.csharp || s.dotnet {
				r.title(".NET Developer")
				r.alt("C# Developer", "Backend Developer (.NET)")
			}
			if s.php {
				r.title("PHP Developer")
			}
			if s.ruby {
				r.title("Ruby Developer")
				r.alt("Ruby on Rails Developer")
			}
			if s.node {
				r.title("Node.js Developer")
			}
		},
	},
	{
		name: "fullstack",
		when: func(s *signals) bool { return s.mern || (s.frontend && s.backend) },
		apply: func(s *signals, r *roleSet) {
			r.title("Full Stack Developer")
			if s.mern {
				r.alt("Full Stack Developer (MERN)", "MERN Stack Developer")
			}
			r.direction(Fullstack)
		},
	},
	{
		name: "data",
		when: func(s *signals) bool { return s.realML || s.dataEngineering || s.bigData || s.spark },
		apply: func(s *signals, r *roleSet) {
			if s.realML || s.dataScience {
				r.title("Data Scientist")
				if s.mlOutsideTraining {
					r.title("Machine Learning Engineer")
					r.alt("ML Engineer")
				}
			}
			if s.dataEngineering || s.bigData || s.spark {
				r.title("Data Engineer")
				r.alt("Big Data Engineer")
			}
			if s.analytics {
				r.title("Data Analyst")
			}
			r.direction(Data)
		},
	},
	{
		// Prompt and content work that is not backed by real ML experience.
		name: "ai-content",
		when: func(s *signals) bool { return s.ai && !s.realML },
		apply: func(_ *signals, r *roleSet) {
			r.title("AI Content / Prompt Specialist")
			r.alt("AI Content Strategist", "Prompt Engineer")
			r.direction(AI)
		},
	},
	{
		name: "devops",
		when: func(s *signals) bool {
			return s.devops || s.sre || s.docker || s.kubernetes || s.aws || s.azure || s.gcp ||
				s.terraform || s.ansible || s.jenkins || s.ci
		},
		apply: func(s *signals, r *roleSet) {
			r.title("DevOps Engineer")
			if s.sre {
				r.title("Site Reliability Engineer")
			}
			if s.kubernetes || s.docker {
				r.alt("Platform Engineer", "Cloud Engineer")
			}
			if s.aws || s.azure || s.gcp {
				r.alt("Cloud Engineer", "Cloud Architect")
			}
			r.direction(DevOps)
		},
	},
	{
		name: "security",
		when: func(s *signals) bool { return s.security },
		apply: func(_ *signals, r *roleSet) {
			r.title("Security Engineer")
			r.alt("Cybersecurity Specialist", "Penetration Tester")
			r.direction(Security)
		},
	},
	{
		name: "mobile",
		when: func(s *signals) bool {
			return s.mobile || s.android || s.ios || s.reactNative || s.flutter || s.swift || s.kotlin
		},
		apply: func(s *signals, r *roleSet) {
			if s.android || s.kotlin {
				r.title("Android Developer")
			}
			if s.ios || s.swift {
				r.title("iOS Developer")
			}
			if s.reactNative {
				r.title("React Native Developer")
			}
			if s.flutter || s.dart {
				r.title("Flutter Developer")
			}
			if !s.android && !s.ios && s.mobile {
				r.title("Mobile Developer")
			}
			r.direction(Mobile)
		},
	},
	{
		name: "gamedev",
		when: func(s *signals) bool { return s.gameDev || s.unity || s.unreal },
		apply: func(s *signals, r *roleSet) {
			r.title("Game Developer")
			if s.unity {
				r.alt("Unity Developer")
			}
			if s.unreal {
				r.alt("Unreal Engine Developer")
			}
			r.direction(GameDev)
		},
	},
	{
		name: "blockchain",
		when: func(s *signals) bool { return s.blockchain },
		apply: func(_ *signals, r *roleSet) {
			r.title("Blockchain Developer")
			r.alt("Web3 Developer", "Solidity Developer")
			r.direction(Blockchain)
		},
	},
	{
		name: "embedded",
		when: func(s *signals) bool { return s.embedded },
		apply: func(_ *signals, r *roleSet) {
			r.title("Embedded Systems Engineer")
			r.alt("IoT Developer")
			r.direction(Embedded)
		},
	},
	{
		// C and C++ only count toward embedded when systems wording is present.
		name: "embedded-c",
		when: func(s *signals) bool { return !s.embedded && (s.cpp || s.c) && s.embeddedContext },
		apply: func(s *signals, r *roleSet) {
			r.title("Embedded Systems Engineer")
			if s.cpp {
				r.alt("C++ Developer")
			}
			r.direction(Embedded)
		},
	},
	{
		name: "wordpress",
		when: func(s *signals) bool { return s.wordpress },
		apply: func(_ *signals, r *roleSet) {
			r.title("Webdesigner (WordPress)")
			r.alt("WordPress Developer", "Webentwickler:in (WordPress)")
			r.direction(Design)
		},
	},
	{
		name: "design",
		when: func(s *signals) bool { return s.design },
		apply: func(s *signals, r *roleSet) {
			r.title("Digital Designer")
			if s.uxui || s.frontend {
				r.title("UX/UI Designer")
			}
			r.alt("Product Designer", "Visual Designer")
			r.direction(Design)
		},
	},
	{
		name: "content",
		when: func(s *signals) bool { return s.content },
		apply: func(s *signals, r *roleSet) {
			r.alt("Content Creator", "Content Writer")
			if s.ai {
				r.alt("AI-assisted Content Creator")
			}
		},
	},
	{
		name: "qa",
		when: func(s *signals) bool { return s.qa },
		apply: func(_ *signals, r *roleSet) {
			r.title("QA Engineer")
			r.alt("Test Automation Engineer")
			r.direction(QA)
		},
	},
	{
		name: "vue",
		when: func(s *signals) bool { return s.vue },
		apply: func(_ *signals, r *roleSet) { r.title("Vue.js Developer", "Frontend Developer") },
	},
	{
		name: "angular",
		when: func(s *signals) bool { return s.angular },
		apply: func(_ *signals, r *roleSet) { r.title("Angular Developer", "Frontend Developer") },
	},
	{
		name: "nextjs",
		when: func(s *signals) bool { return s.nextjs },
		apply: func(_ *signals, r *roleSet) { r.alt("Next.js Developer") },
	},
	{
		name: "svelte",
		when: func(s *signals) bool { return s.svelte },
		apply: func(_ *signals, r *roleSet) { r.alt("Svelte Developer") },
	},
}
