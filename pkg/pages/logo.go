package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
)

const logoDefs = `<defs>` +
	`<linearGradient id="repxGradient" x1="0%" y1="0%" x2="100%" y2="100%">` +
	`<stop offset="0%" stop-color="#667eea"/><stop offset="50%" stop-color="#764ba2"/><stop offset="100%" stop-color="#f093fb"/>` +
	`</linearGradient>` +
	`<linearGradient id="repxGradient2" x1="100%" y1="0%" x2="0%" y2="100%">` +
	`<stop offset="0%" stop-color="#4facfe"/><stop offset="100%" stop-color="#00f2fe"/>` +
	`</linearGradient>` +
	`</defs>`

const logoShapes = `<path d="M60 10 L100 32.5 L100 77.5 L60 100 L20 77.5 L20 32.5 Z" stroke="url(#repxGradient)" stroke-width="3" fill="none" opacity="0.6"/>` +
	`<path d="M60 20 L90 37.5 L90 72.5 L60 90 L30 72.5 L30 37.5 Z" fill="url(#repxGradient)" opacity="0.15"/>` +
	`<path d="M45 40 L45 80 M45 40 L62 40 Q72 40 72 50 Q72 60 62 60 L45 60 M58 60 L75 80" stroke="url(#repxGradient2)" stroke-width="6" stroke-linecap="round" stroke-linejoin="round" fill="none"/>`

// Logo renders the hexagon mark at size pixels square
func Logo(size int, spin bool) g.Node {
	class := "repx-logo"
	if spin {
		class += " animate-spin-slow"
	}
	return g.Raw(fmt.Sprintf(
		`<svg class="%s" width="%d" height="%d" viewBox="0 0 120 120" fill="none" xmlns="http://www.w3.org/2000/svg" role="img" aria-label="RepX">%s%s</svg>`,
		class, size, size, logoDefs, logoShapes,
	))
}
