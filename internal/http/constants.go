package httpx

// CurrentPage constants define the page identifiers used in templates and
// navigation. These keep UI handlers and template mapping consistent.
const (
	PageDashboard = "dashboard"
	PageLogin     = "login"

	PageInstructors    = "instructors"
	PageInstructorForm = "instructor-form"
	PageInstructorView = "instructor-view"
	PageStudents       = "students"
	PageStudentForm    = "student-form"
	PageStudentView    = "student-view"

	PageCourses    = "courses"
	PageCourseForm = "course-form"

	PageMemberships = "memberships"

	PageTickets    = "tickets"
	PageTicketView = "ticket-view"
	PageContacts   = "contacts"

	PageRevenue            = "revenue"
	PageInstructorActivity = "instructor-activity"
	PageStudentActivity    = "student-activity"

	PageSettings = "settings"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeEdit   FormMode = "edit"
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageDashboard:          "dashboard-content",
	PageInstructors:        "instructors-content",
	PageInstructorForm:     "instructor-form-content",
	PageInstructorView:     "roster-view-content",
	PageStudents:           "students-content",
	PageStudentForm:        "student-form-content",
	PageStudentView:        "roster-view-content",
	PageCourses:            "courses-content",
	PageCourseForm:         "course-form-content",
	PageMemberships:        "memberships-content",
	PageTickets:            "tickets-content",
	PageTicketView:         "ticket-view-content",
	PageContacts:           "contacts-content",
	PageRevenue:            "revenue-content",
	PageInstructorActivity: "activity-content",
	PageStudentActivity:    "activity-content",
	PageSettings:           "settings-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}
