package navigation

// Route is one entry of the route table: a path plus the auth metadata the
// guard evaluates before every transition.
type Route struct {
	Path         string
	Title        string
	RequiresAuth bool
	GuestOnly    bool
}

// Well-known paths.
const (
	LoginPath    = "/signin"
	HomePath     = "/dashboard"
	NotFoundPath = "/error-404"
)

// DefaultRoutes is the application route table.
func DefaultRoutes() []Route {
	return []Route{
		{Path: LoginPath, Title: "Signin", GuestOnly: true},
		{Path: "/signup", Title: "Signup", GuestOnly: true},
		{Path: HomePath, Title: "Dashboard", RequiresAuth: true},
		{Path: "/teacher", Title: "Teacher", RequiresAuth: true},
		{Path: "/teacher/create", Title: "Create Teacher", RequiresAuth: true},
		{Path: "/teacher/edit", Title: "Edit Teacher", RequiresAuth: true},
		{Path: "/student", Title: "Student", RequiresAuth: true},
		{Path: "/student/create", Title: "Create Student", RequiresAuth: true},
		{Path: "/student/edit", Title: "Edit Student", RequiresAuth: true},
		{Path: "/link-account", Title: "Link Account", RequiresAuth: true},
		{Path: "/profile", Title: "Profile"},
		{Path: "/calendar", Title: "Calendar"},
		{Path: NotFoundPath, Title: "404 Error"},
	}
}
