package datepicker

import (
	"errors"
	"fmt"

	"github.com/MikeBiancalana/datepicker/internal/dom"
)

// ErrStructural reports markup missing a part the widget needs. It is not
// recoverable by the widget; hosts are expected to supply valid markup.
var ErrStructural = errors.New("date picker structure")

// elements are the parts of one widget, located from any element inside it.
type elements struct {
	datePicker *dom.Element
	input      *dom.Element
	toggle     *dom.Element
	calendar   *dom.Element
	frame      *dom.Element
	status     *dom.Element

	// Optional: present only in the matching view.
	focusedDate *dom.Element
	firstYear   *dom.Element
}

func getElements(el *dom.Element) (*elements, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: nil element", ErrStructural)
	}

	root := el.Closest(RoleDatePicker)
	if root == nil {
		return nil, fmt.Errorf("%w: element is missing outer %s", ErrStructural, RoleDatePicker)
	}

	els := &elements{
		datePicker: root,
		input:      root.Query(RoleInput),
		toggle:     root.Query(RoleToggle),
		calendar:   root.Query(RoleCalendar),
		frame:      root.Query(RoleFrame),
		status:     root.Query(RoleStatus),
	}

	required := []struct {
		role  dom.Role
		found *dom.Element
	}{
		{RoleInput, els.input},
		{RoleToggle, els.toggle},
		{RoleCalendar, els.calendar},
		{RoleFrame, els.frame},
		{RoleStatus, els.status},
	}
	for _, r := range required {
		if r.found == nil {
			return nil, fmt.Errorf("%w: %s is missing inner %s", ErrStructural, RoleDatePicker, r.role)
		}
	}

	els.focusedDate = els.calendar.Query(RoleDateFocused)
	els.firstYear = els.calendar.Query(RoleYear)
	return els, nil
}

// id returns the widget's instance id for logging.
func (e *elements) id() string {
	return e.datePicker.AttrOr(AttrID)
}
