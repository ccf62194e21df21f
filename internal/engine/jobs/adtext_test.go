package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<p>Wir suchen</p>"))
	assert.True(t, LooksLikeHTML("<UL><LI>React</LI></UL>"))
	assert.False(t, LooksLikeHTML("Wir suchen C# <-> Java Entwickler"))
	assert.False(t, LooksLikeHTML("a < b and b > c"))
}

func TestAdText_Plain(t *testing.T) {
	assert.Equal(t, "Wir suchen React Entwickler", AdText("  Wir suchen React Entwickler \n"))
}

func TestAdText_HTML(t *testing.T) {
	got := AdText(`<div><h2>Frontend Developer</h2><ul><li>React</li><li>TypeScript</li></ul><script>track()</script></div>`)
	assert.Contains(t, got, "Frontend Developer")
	assert.Contains(t, got, "React")
	assert.Contains(t, got, "TypeScript")
	assert.NotContains(t, got, "<li>")
	assert.NotContains(t, got, "track()")
}

func TestHTMLText(t *testing.T) {
	got := htmlText(`<p>Go</p><style>.x{}</style><p> Kubernetes </p>`)
	assert.Equal(t, "Go\nKubernetes", got)
}

func TestStripBoilerplate(t *testing.T) {
	got := stripBoilerplate(`<nav>Home | Jobs</nav><p>Wir suchen Go Entwickler</p><footer>Impressum</footer>`)
	assert.Contains(t, got, "Wir suchen Go Entwickler")
	assert.NotContains(t, got, "Impressum")
	assert.NotContains(t, got, "Home | Jobs")
}

func TestAdText_FullPage(t *testing.T) {
	page := `<!DOCTYPE html><html><head><title>Jobs bei Beispiel GmbH</title></head><body>
<nav><a href="/">Startseite</a> <a href="/karriere">Karriere</a></nav>
<article>
<h1>Senior Backend Engineer (m/w/d)</h1>
<p>Die Beispiel GmbH entwickelt Logistiksoftware für mittelständische Unternehmen in ganz Europa.
Für unser Plattform-Team in München suchen wir ab sofort eine erfahrene Verstärkung.</p>
<h2>Deine Aufgaben</h2>
<ul><li>Du entwickelst Microservices in Go und betreibst sie auf Kubernetes.</li>
<li>Du gestaltest unsere PostgreSQL Datenmodelle und REST APIs mit.</li>
<li>Du arbeitest eng mit Produktmanagement und Frontend zusammen.</li></ul>
<h2>Dein Profil</h2>
<p>Mehrere Jahre Erfahrung in der Backend-Entwicklung, sicherer Umgang mit Docker und Linux
sowie Freude an sauberem, getestetem Code. Gute Deutsch- und Englischkenntnisse runden dein Profil ab.</p>
</article>
<footer>Impressum · Datenschutz · Cookie-Einstellungen</footer>
<script>window.track && track('view')</script>
</body></html>`

	got := AdText(page)
	assert.Contains(t, got, "Microservices in Go")
	assert.Contains(t, got, "PostgreSQL")
	assert.Contains(t, got, "Docker")
	assert.NotContains(t, got, "Datenschutz")
	assert.NotContains(t, got, "track(")
	assert.NotContains(t, got, "<p>")
}
