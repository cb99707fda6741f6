// Copyright Niklas Bubeck, 2026. All rights reserved.

package pubview

import "strconv"

// Action names accepted by Dispatch. The HTTP adapter maps its inputs
// (query parameters, form fields) to these exactly once per request.
const (
	ActionFilter      = "filter"
	ActionSort        = "sort"
	ActionSearch      = "search"
	ActionPage        = "page"
	ActionClearSearch = "clear-search"
)

// transitions maps action names to state-transition functions.
var transitions = map[string]func(v *View, arg string){
	ActionFilter: func(v *View, arg string) { v.SetFilter(ParseFilter(arg)) },
	ActionSort:   func(v *View, arg string) { v.SetSort(arg) },
	ActionSearch: func(v *View, arg string) { v.SetSearch(arg) },
	ActionPage: func(v *View, arg string) {
		n, err := strconv.Atoi(arg)
		if err != nil {
			n = 1
		}
		v.SetPage(n)
	},
	ActionClearSearch: func(v *View, _ string) { v.SetSearch("") },
}

// Dispatch applies a named action to the view. Unknown actions are a no-op;
// the function reports whether the action was recognized so the caller can
// log it.
func Dispatch(v *View, action, arg string) bool {
	fn, ok := transitions[action]
	if !ok {
		return false
	}
	fn(v, arg)
	return true
}
