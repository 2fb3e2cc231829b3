// Package pages renders the site's HTML with gomponents.
package pages

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Label string
	Href  string
}

var mainNav = []navLink{
	{"Product", "/#product"},
	{"Approach", "/#approach"},
	{"Technology", "/#technology"},
	{"Vision", "/#vision"},
}

// Page wraps body in the shared document, navigation and footer
func Page(title, description string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       title + " | FoundHex",
		Description: description,
		Language:    "en",
		Head: []g.Node{
			Meta(Name("theme-color"), Content("#7c3aed")),
		},
		Body: []g.Node{
			Class("bg-slate-50 text-slate-900"),
			header(),
			Main(g.Group(body)),
			footer(),
		},
	})
}

func header() g.Node {
	return Header(
		Class("fixed top-0 inset-x-0 z-50 glass-morphism"),
		Nav(
			Class("container mx-auto flex items-center justify-between px-6 py-4"),
			A(Href("/"), Class("flex items-center gap-3"), Logo(40, false), Span(Class("text-xl font-bold"), g.Text("FoundHex"))),
			Ul(
				Class("hidden md:flex gap-8"),
				g.Group(g.Map(mainNav, func(l navLink) g.Node {
					return Li(A(Href(l.Href), g.Text(l.Label)))
				})),
			),
			A(Href("/repx"), Class("btn-primary"), g.Text("Try RepX")),
		),
	)
}

func footer() g.Node {
	columns := []struct {
		Title string
		Links []navLink
	}{
		{"Products", []navLink{{"RepX", "/repx"}, {"Features", "/#product"}, {"Technology", "/#technology"}}},
		{"Company", []navLink{{"About", "/#approach"}, {"Vision", "/#vision"}, {"Contact", "mailto:contact@foundhex.com"}}},
		{"Legal", []navLink{{"Privacy Policy", "#"}, {"Terms of Service", "#"}, {"Security", "#"}}},
	}

	return Footer(
		Class("bg-slate-900 text-slate-400 py-16"),
		Div(
			Class("container mx-auto grid md:grid-cols-4 gap-12 px-6"),
			Div(
				P(Class("text-white font-bold text-xl"), g.Text("FoundHex")),
				P(g.Text("AI-first software for local businesses.")),
			),
			g.Group(g.Map(columns, func(col struct {
				Title string
				Links []navLink
			}) g.Node {
				return Div(
					H3(Class("text-white font-semibold mb-4"), g.Text(col.Title)),
					Ul(g.Group(g.Map(col.Links, func(l navLink) g.Node {
						return Li(A(Href(l.Href), Class("hover:text-white"), g.Text(l.Label)))
					}))),
				)
			})),
		),
		P(Class("text-center text-sm mt-12"), g.Text("© FoundHex. All rights reserved.")),
	)
}
