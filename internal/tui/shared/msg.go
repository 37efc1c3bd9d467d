package shared

import "fmt"

// Route identifies a detail page.
type Route struct {
	Kind string
	ID   int
}

// Path is the route in URL form, e.g. /details/tv/42.
func (r Route) Path() string {
	return fmt.Sprintf("/details/%s/%d", r.Kind, r.ID)
}

// MsgOpenDetail requests the detail screen for a route.
type MsgOpenDetail struct {
	Route Route
}

// MsgBack requests navigation back to the previous screen
type MsgBack struct{}

// MsgPlay requests the player screen for url.
type MsgPlay struct {
	Route Route
	Title string
	URL   string
}

// MsgClosePlayer returns from the player to the detail it was started from.
type MsgClosePlayer struct{}

// MsgHistoryChanged tells the home screen to reload Continue Watching.
type MsgHistoryChanged struct{}

// MsgStatus shows a transient line in the footer.
type MsgStatus struct {
	Text string
	Err  error
}
