package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"foundhex-site/pkg/models"
	"foundhex-site/pkg/signup"
)

var repxFeatures = []card{
	{"Real-Time Review Monitoring", "Get instant notifications when new reviews are posted across Google, Yelp, Facebook, and more."},
	{"AI-Powered Response Generation", "Let our advanced AI craft thoughtful, personalized responses that match your brand voice."},
	{"Smart SMS Campaigns", "Engage customers with automated, targeted SMS campaigns that drive repeat business and positive reviews."},
	{"Advanced Analytics & Insights", "Track sentiment trends, platform performance, response times, and customer satisfaction over time."},
	{"Competitor Tracking", "Monitor competitor reviews and ratings to benchmark your performance and identify opportunities."},
	{"Multi-Location Management", "Manage multiple locations from a single dashboard with location-specific insights and team access controls."},
}

var repxSteps = []card{
	{"Connect Your Platforms", "Link your Google Business, Yelp, Facebook, and other review platforms in just a few clicks."},
	{"AI Learns Your Brand", "Our intelligent system analyzes your business and creates responses that match your unique voice and style."},
	{"Monitor & Engage", "Get real-time notifications, AI-suggested responses, and powerful analytics from one dashboard."},
	{"Grow Your Business", "Watch your ratings improve, response time decrease, and customer satisfaction soar."},
}

// RepXLanding is the product page. It embeds a fresh signup wizard and the
// demo booking form.
func RepXLanding() g.Node {
	return Page("RepX reputation management", "AI-powered review monitoring and responses for local businesses.",
		Section(
			Class("pt-32 pb-20 text-center container mx-auto px-6"),
			Div(Class("flex justify-center mb-8"), Logo(120, true)),
			H1(Class("text-5xl md:text-7xl font-bold mb-6"), g.Text("Your reputation, managed by AI")),
			P(Class("text-xl text-slate-600 mb-8"), g.Text("RepX watches every review, drafts every reply and keeps customers coming back.")),
			Div(Class("flex justify-center gap-4"),
				A(Href("#signup"), Class("btn-primary"), g.Text("Start Free")),
				A(Href("#demo"), Class("btn-secondary"), g.Text("Book a Demo")),
			),
		),
		Section(Class("py-20"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("Everything you need to own your reputation")),
			cardGrid(repxFeatures),
		),
		Section(Class("py-20"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("How RepX Works")),
			cardGrid(repxSteps),
		),
		Section(Class("py-20 container mx-auto px-6"),
			H2(Class("text-4xl font-bold text-center mb-12"), g.Text("Simple, transparent pricing")),
			Div(Class("grid md:grid-cols-3 gap-6"),
				g.Group(g.Map(models.Plans(), func(p models.PlanOffer) g.Node {
					return planCard(p, p.Name == models.DefaultPlan, false)
				})),
			),
		),
		Section(Class("py-20 container mx-auto px-6"),
			H2(Class("text-4xl font-bold text-center mb-6"), g.Text("Ready to Get Started?")),
			SignupWizard(signup.New().Snapshot()),
			Div(Class("mt-16"), DemoForm(models.DemoBookingData{Locations: models.DefaultLocations}, "")),
		),
	)
}
