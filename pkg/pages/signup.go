package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"foundhex-site/pkg/models"
	"foundhex-site/pkg/signup"
)

// Wizard form actions posted by the step buttons
const (
	ActionNext   = "next"
	ActionBack   = "back"
	ActionSubmit = "submit"
)

// SignupPath is where the wizard form posts
const SignupPath = "/repx/signup"

type textInput struct {
	Field       string
	Label       string
	InputType   string
	Placeholder string
	Required    bool
}

var organizationInputs = []textInput{
	{models.FieldOrganizationName, "Organization Name", "text", "Acme Restaurant Group", true},
	{models.FieldContactName, "Contact Name", "text", "John Doe", true},
	{models.FieldContactEmail, "Email Address", "email", "john@acme.com", true},
	{models.FieldPhoneNumber, "Phone Number", "tel", "+1 (555) 123-4567", false},
	{models.FieldWebsite, "Website", "url", "https://acme.com", false},
}

var locationInputs = []textInput{
	{models.FieldFirstLocationName, "Location Name", "text", "Leave blank to use default name", false},
	{models.FieldFirstLocationAddress, "Address", "text", "123 Main Street", false},
	{models.FieldFirstLocationCity, "City", "text", "New York", false},
	{models.FieldFirstLocationState, "State", "text", "NY", false},
	{models.FieldFirstLocationZipCode, "ZIP Code", "text", "10001", false},
}

// SignupPage renders the wizard, or the confirmation once it succeeded
func SignupPage(state signup.State) g.Node {
	return Page("Get started with RepX", "Create your RepX organization.",
		Section(Class("pt-32 pb-20 container mx-auto px-6"), SignupWizard(state)),
	)
}

// SignupWizard renders the current step of a wizard
func SignupWizard(state signup.State) g.Node {
	if state.SubmitSuccess {
		return signupSuccess(state.FormData.ContactEmail)
	}

	var step g.Node
	switch state.Step {
	case signup.StepLocation:
		step = locationStep(state.FormData)
	case signup.StepPlan:
		step = planStep(state)
	default:
		step = organizationStep(state.FormData)
	}

	return Div(
		ID("signup"),
		Class("glass-morphism rounded-3xl p-8 md:p-12 max-w-4xl mx-auto shadow-2xl"),
		H2(Class("text-4xl font-bold mb-2 text-center"), g.Text("Get Started with RepX")),
		P(Class("text-center text-slate-600 mb-8"), g.Text("Create your organization and start managing your reputation in minutes")),
		progress(state.Step),
		g.If(state.Error != "", Div(Class("mb-6 p-4 bg-red-50 border border-red-200 rounded-lg text-red-600"), Role("alert"), g.Text(state.Error))),
		g.El("form", Method("post"), Action(SignupPath), Class("space-y-6"), step),
	)
}

func progress(current signup.Step) g.Node {
	var dots []g.Node
	for s := signup.FirstStep; s <= signup.LastStep; s++ {
		class := "w-10 h-10 rounded-full flex items-center justify-center font-bold "
		if current >= s {
			class += "bg-purple-600 text-white"
		} else {
			class += "bg-slate-200"
		}
		dot := Div(Class(class), g.Text(strconv.Itoa(int(s))))
		if s == current {
			dot = Div(Class(class), g.Attr("aria-current", "step"), g.Text(strconv.Itoa(int(s))))
		}
		dots = append(dots, dot)
	}
	return Div(Class("flex items-center justify-center gap-4 mb-8"), g.Group(dots))
}

func fieldValue(data models.SignupFormData, field string) string {
	if v := data.TextField(field); v != nil {
		return *v
	}
	return ""
}

func inputRow(data models.SignupFormData, in textInput) g.Node {
	label := in.Label
	if in.Required {
		label += " *"
	}
	return Div(
		g.El("label", For(in.Field), Class("block text-sm font-semibold mb-2"), g.Text(label)),
		Input(
			ID(in.Field), Name(in.Field), Type(in.InputType),
			Value(fieldValue(data, in.Field)), Placeholder(in.Placeholder),
			Class("w-full px-4 py-3 rounded-lg border border-slate-300"),
			g.If(in.Required, Required()),
		),
	)
}

func organizationStep(data models.SignupFormData) g.Node {
	industries := models.Industries()
	return g.Group{
		inputRow(data, organizationInputs[0]),
		Div(
			g.El("label", For(models.FieldIndustry), Class("block text-sm font-semibold mb-2"), g.Text("Industry *")),
			Select(
				ID(models.FieldIndustry), Name(models.FieldIndustry), Required(),
				Class("w-full px-4 py-3 rounded-lg border border-slate-300"),
				Option(Value(""), g.Text("Select an industry...")),
				g.Group(g.Map(industries, func(ind string) g.Node {
					return Option(Value(ind), g.If(ind == data.Industry, Selected()), g.Text(ind))
				})),
			),
		),
		g.Group(g.Map(organizationInputs[1:], func(in textInput) g.Node { return inputRow(data, in) })),
		Div(
			g.El("label", For(models.FieldDescription), Class("block text-sm font-semibold mb-2"), g.Text("Description (Optional)")),
			Textarea(ID(models.FieldDescription), Name(models.FieldDescription), Rows("3"),
				Placeholder("Tell us about your organization..."),
				Class("w-full px-4 py-3 rounded-lg border border-slate-300"),
				g.Text(data.Description)),
		),
		Div(Class("flex justify-end"), actionButton(ActionNext, "Next Step", true, false)),
	}
}

func locationStep(data models.SignupFormData) g.Node {
	return g.Group{
		P(Class("text-slate-600 mb-6"), g.Text("We'll create your first location automatically. You can customize it later or add it now (optional).")),
		g.Group(g.Map(locationInputs, func(in textInput) g.Node { return inputRow(data, in) })),
		Div(Class("flex justify-between gap-4"),
			actionButton(ActionBack, "Back", false, false),
			actionButton(ActionNext, "Next Step", true, false),
		),
	}
}

func planStep(state signup.State) g.Node {
	return g.Group{
		P(Class("text-slate-600 mb-6 text-center"), g.Text("Choose the plan that's right for your business")),
		Div(Class("grid md:grid-cols-3 gap-6"),
			g.Group(g.Map(models.Plans(), func(p models.PlanOffer) g.Node {
				return planCard(p, p.Name == state.FormData.SubscriptionPlan, true)
			})),
		),
		Div(Class("flex justify-between gap-4 pt-6"),
			actionButton(ActionBack, "Back", false, false),
			submitButton(state.IsSubmitting),
		),
	}
}

// planCard renders one plan; selectable cards carry a radio input
func planCard(p models.PlanOffer, selected, selectable bool) g.Node {
	class := "rounded-xl p-6 border-2 "
	if selected {
		class += "border-purple-600 bg-purple-50 shadow-lg"
	} else {
		class += "border-slate-300"
	}
	if selectable {
		class += " cursor-pointer block"
	}
	content := []g.Node{
		Class(class),
		g.If(selectable, Input(Type("radio"), Name(models.FieldSubscriptionPlan), Value(string(p.Name)), g.If(selected, Checked()), Class("sr-only"))),
		H3(Class("text-2xl font-bold mb-2 text-center"), g.Text(string(p.Name))),
		P(Class("text-3xl font-bold text-gradient text-center"), g.Text(p.Price)),
		g.If(p.Monthly, P(Class("text-sm text-slate-600 text-center"), g.Text("/month"))),
		Ul(Class("space-y-2 mt-4"), g.Group(g.Map(p.Features, func(f string) g.Node {
			return Li(Class("text-sm"), g.Text(f))
		}))),
	}
	if selectable {
		return g.El("label", content...)
	}
	return Div(content...)
}

func actionButton(action, text string, primary, disabled bool) g.Node {
	class := "px-8 py-3 rounded-lg font-semibold "
	if primary {
		class += "bg-gradient-to-r from-purple-600 to-indigo-600 text-white shadow-lg"
	} else {
		class += "border border-slate-300"
	}
	return Button(Type("submit"), Name("action"), Value(action), Class(class), g.If(disabled, Disabled()), g.Text(text))
}

func submitButton(submitting bool) g.Node {
	if submitting {
		return actionButton(ActionSubmit, "Creating...", true, true)
	}
	return actionButton(ActionSubmit, "Create Organization", true, false)
}

func signupSuccess(email string) g.Node {
	return Div(
		ID("signup"),
		Class("glass-morphism rounded-3xl p-12 max-w-2xl mx-auto text-center shadow-2xl"),
		H2(Class("text-4xl font-bold mb-4"), g.Text("Welcome to RepX!")),
		P(Class("text-xl text-slate-600 mb-6"), g.Text("Your organization has been created successfully.")),
		Div(Class("bg-purple-50 rounded-xl p-6 mb-8"),
			P(Class("text-lg font-semibold mb-2"), g.Text("Check your email")),
			P(g.Text("We've sent an invitation to "), Strong(g.Text(email))),
			P(Class("text-sm text-slate-500 mt-2"), g.Text("Click the link in the email to set your password and access your account.")),
		),
		A(Href("https://repx.com"), Class("btn-primary"), g.Text("Return to RepX")),
	)
}
