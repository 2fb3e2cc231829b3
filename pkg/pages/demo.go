package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"foundhex-site/pkg/models"
)

// DemoPath is where the demo form posts
const DemoPath = "/repx/demo"

// DemoForm renders the "Book a Demo" form, refilled with data after an error
func DemoForm(data models.DemoBookingData, errMsg string) g.Node {
	inputs := []struct {
		Field, Label, InputType, Placeholder, Value string
	}{
		{"name", "Full Name *", "text", "John Doe", data.Name},
		{"email", "Email Address *", "email", "john@example.com", data.Email},
		{"phone", "Phone Number *", "tel", "+1 (555) 123-4567", data.Phone},
		{"company", "Business Name *", "text", "Your Business", data.Company},
	}

	return Div(
		ID("demo"),
		Class("glass-morphism rounded-3xl p-8 md:p-12 max-w-4xl mx-auto shadow-2xl"),
		H3(Class("text-3xl font-bold mb-2 text-center"), g.Text("Schedule Your Personal Demo")),
		P(Class("text-center text-slate-600 mb-8"), g.Text("See RepX in action with a personalized walkthrough")),
		g.If(errMsg != "", Div(Class("mb-6 p-4 bg-red-50 border border-red-200 rounded-lg text-red-600"), Role("alert"), g.Text(errMsg))),
		g.El("form", Method("post"), Action(DemoPath), Class("grid md:grid-cols-2 gap-6"),
			g.Group(g.Map(inputs, func(in struct {
				Field, Label, InputType, Placeholder, Value string
			}) g.Node {
				return Div(
					g.El("label", For("demo-"+in.Field), Class("block text-sm font-semibold mb-2"), g.Text(in.Label)),
					Input(ID("demo-"+in.Field), Name(in.Field), Type(in.InputType), Value(in.Value), Placeholder(in.Placeholder), Required(),
						Class("w-full px-4 py-3 rounded-lg border border-slate-300")),
				)
			})),
			Div(
				g.El("label", For("demo-industry"), Class("block text-sm font-semibold mb-2"), g.Text("Industry *")),
				Select(ID("demo-industry"), Name("industry"), Required(), Class("w-full px-4 py-3 rounded-lg border border-slate-300"),
					Option(Value(""), g.Text("Select an industry...")),
					g.Group(g.Map(models.DemoIndustries(), func(ind models.DemoIndustry) g.Node {
						return Option(Value(ind.Slug), g.If(ind.Slug == data.Industry, Selected()), g.Text(ind.Label))
					})),
				),
			),
			Div(
				g.El("label", For("demo-locations"), Class("block text-sm font-semibold mb-2"), g.Text("Number of Locations")),
				Select(ID("demo-locations"), Name("locations"), Class("w-full px-4 py-3 rounded-lg border border-slate-300"),
					g.Group(g.Map(models.LocationRanges, func(r string) g.Node {
						return Option(Value(r), g.If(r == data.NormalizedLocations(), Selected()), g.Text(locationsLabel(r)))
					})),
				),
			),
			Div(
				g.El("label", For("demo-date"), Class("block text-sm font-semibold mb-2"), g.Text("Preferred Date")),
				Input(ID("demo-date"), Name("preferredDate"), Type("date"), Value(data.PreferredDate), Class("w-full px-4 py-3 rounded-lg border border-slate-300")),
			),
			Div(
				g.El("label", For("demo-time"), Class("block text-sm font-semibold mb-2"), g.Text("Preferred Time")),
				Select(ID("demo-time"), Name("preferredTime"), Class("w-full px-4 py-3 rounded-lg border border-slate-300"),
					Option(Value(""), g.Text("Select a time...")),
					g.Group(g.Map([]string{"morning", "afternoon", "evening"}, func(t string) g.Node {
						return Option(Value(t), g.If(t == data.PreferredTime, Selected()), g.Text(timeLabel(t)))
					})),
				),
			),
			Div(Class("md:col-span-2"),
				g.El("label", For("demo-message"), Class("block text-sm font-semibold mb-2"), g.Text("Additional Information")),
				Textarea(ID("demo-message"), Name("message"), Rows("4"), Placeholder("Tell us about your business needs..."),
					Class("w-full px-4 py-3 rounded-lg border border-slate-300"), g.Text(data.Message)),
			),
			Div(Class("md:col-span-2 flex justify-center"),
				Button(Type("submit"), Class("px-8 py-3 rounded-lg font-semibold bg-gradient-to-r from-purple-600 to-indigo-600 text-white"), g.Text("Schedule Demo")),
			),
		),
	)
}

func locationsLabel(r string) string {
	if r == "1" {
		return "1 Location"
	}
	return r + " Locations"
}

func timeLabel(t string) string {
	switch t {
	case "morning":
		return "Morning (9AM - 12PM)"
	case "afternoon":
		return "Afternoon (12PM - 5PM)"
	case "evening":
		return "Evening (5PM - 8PM)"
	}
	return t
}

// DemoPage shows the demo form on its own, used after a failed post
func DemoPage(data models.DemoBookingData, errMsg string) g.Node {
	return Page("Book a RepX demo", "Schedule a personal RepX walkthrough.",
		Section(Class("pt-32 pb-20 container mx-auto px-6"), DemoForm(data, errMsg)),
	)
}

// DemoConfirmation thanks the visitor after a booking
func DemoConfirmation(result models.DemoBookingResult) g.Node {
	return Page("Demo scheduled", "Your RepX demo request was received.",
		Section(Class("pt-32 pb-20 container mx-auto px-6"),
			Div(
				ID("demo"),
				Class("glass-morphism rounded-3xl p-12 max-w-2xl mx-auto text-center shadow-2xl"),
				H2(Class("text-4xl font-bold mb-4"), g.Text("Demo Scheduled!")),
				P(Class("text-xl text-slate-600 mb-6"), g.Text("Thank you for your interest in RepX.")),
				Div(Class("bg-purple-50 rounded-xl p-6"),
					P(Class("text-lg font-semibold mb-2"), g.Text("We'll be in touch soon")),
					P(g.Text("Our team will contact you at "), Strong(g.Text(result.Email)), g.Text(" to confirm your demo time.")),
				),
			),
		),
	)
}
