package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type card struct {
	Title       string
	Description string
}

type stat struct {
	Value string
	Label string
}

var homeStats = []stat{
	{"10K+", "Reviews Managed"},
	{"98%", "Response Rate"},
	{"45min", "Avg. Response Time"},
	{"4.8★", "Customer Rating"},
}

var approaches = []card{
	{"AI-First Philosophy", "We build intelligent systems that learn and adapt to your business, not just automation tools."},
	{"Local Business Focus", "Deep expertise in the unique challenges faced by restaurants, medical practices, and service businesses."},
	{"Customer-Centric Development", "We build with real business owners, iterating based on actual needs and feedback."},
}

var values = []card{
	{"Innovation", "We push boundaries with cutting-edge AI and modern technology to create tools that didn't exist before."},
	{"Simplicity", "Complex problems deserve elegant solutions. We make powerful software that anyone can use."},
	{"Growth", "Your success is our success. We build tools that scale with you, from day one to enterprise."},
	{"Trust", "Security, reliability, and transparency are foundations of everything we build."},
}

var platformStats = []stat{
	{"99.9%", "Uptime Guarantee"},
	{"SOC 2", "Type II Certified"},
	{"256-bit", "End-to-End Encryption"},
}

// Home is the company landing page
func Home() g.Node {
	return Page("AI software for local businesses", "FoundHex builds AI-first tools that help local businesses grow.",
		Section(
			Class("pt-32 pb-20 text-center"),
			H1(Class("text-5xl md:text-7xl font-bold mb-6"), g.Text("Intelligent software for the businesses on your street")),
			P(Class("text-xl text-slate-600 mb-8"), g.Text("FoundHex builds AI-first products that give local businesses enterprise-grade tools.")),
			A(Href("/repx"), Class("btn-primary"), g.Text("Explore RepX")),
		),
		Section(ID("product"), Class("py-20"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("RepX: reputation management on autopilot")),
			statGrid(homeStats),
		),
		Section(ID("approach"), Class("py-20"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("How We Build Differently")),
			cardGrid(approaches),
		),
		Section(Class("py-20"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("Why FoundHex")),
			cardGrid(values),
		),
		Section(ID("technology"), Class("py-20"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("Built on Modern Technology")),
			statGrid(platformStats),
		),
		Section(ID("vision"), Class("py-20 text-center"),
			H2(Class("text-4xl font-bold mb-6"), g.Text("Building the Future")),
			P(g.Text("Every local business deserves software that works as hard as they do.")),
		),
		Section(Class("py-20 text-center"),
			H2(Class("text-4xl font-bold mb-6"), g.Text("Ready to Transform Your Business?")),
			A(Href("mailto:sales@foundhex.com"), Class("btn-primary"), g.Text("Talk to Sales")),
		),
	)
}

func cardGrid(cards []card) g.Node {
	return Div(
		Class("container mx-auto grid md:grid-cols-3 gap-8 px-6"),
		g.Group(g.Map(cards, func(c card) g.Node {
			return Div(
				Class("glass-morphism rounded-2xl p-8"),
				H3(Class("text-2xl font-bold mb-3"), g.Text(c.Title)),
				P(Class("text-slate-600"), g.Text(c.Description)),
			)
		})),
	)
}

func statGrid(stats []stat) g.Node {
	return Div(
		Class("container mx-auto grid grid-cols-2 md:grid-cols-4 gap-8 px-6 text-center"),
		g.Group(g.Map(stats, func(s stat) g.Node {
			return Div(
				P(Class("text-4xl font-bold text-gradient"), g.Text(s.Value)),
				P(Class("text-slate-600"), g.Text(s.Label)),
			)
		})),
	)
}
