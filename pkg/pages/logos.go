package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type logoVariant struct {
	Name string
	Size int
	Spin bool
	Dark bool
}

var logoVariants = []logoVariant{
	{"Primary", 160, false, false},
	{"Animated", 160, true, false},
	{"On dark", 160, false, true},
	{"Small", 64, false, false},
	{"Favicon", 32, false, false},
}

// LogoShowcase lists the RepX logo variants
func LogoShowcase() g.Node {
	return Page("RepX logo", "RepX brand mark variants.",
		Section(
			Class("pt-32 pb-20 container mx-auto px-6"),
			H1(Class("text-5xl font-bold text-center mb-12"), g.Text("RepX Logo")),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(logoVariants, func(v logoVariant) g.Node {
					bg := "bg-white"
					if v.Dark {
						bg = "bg-slate-900 text-white"
					}
					return Div(
						Class("rounded-2xl p-8 flex flex-col items-center gap-4 "+bg),
						Logo(v.Size, v.Spin),
						P(Class("font-semibold"), g.Text(v.Name)),
					)
				})),
			),
		),
	)
}
