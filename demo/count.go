package demo

// countDemos are the counter demos: a plain count on a center text and two
// consecutive-count constraints.
func countDemos() []Definition {
	return []Definition{
		{
			Name:   "count",
			Kind:   StringMovement,
			Output: "count1",
			Center: "count(>4,3)",
			Steps: []Step{
				pair("1", "false", "1>4   +0", false),
				pair("5", "false", "5>4    +1", true),
				pair("2", "false", "2>4   +1", false),
				pair("6", "false", "6>4    +2", true),
				pair("2", "false", "2>4   +2", false),
				pair("6", "true", "6>4     +3", true),
			},
			Speed: 2,
		},
		{
			Name:       "count_constraint",
			Kind:       StateTransition,
			Output:     "count_constraint_demo",
			Expression: []string{"count!([10,20], 5)"},
			Steps: []Step{
				transition("5", "false", "5∉[10,20]|RESET counter", false, 0),
				transition("25", "false", "25∉[10,20]|RESET counter", false, 0),
				transition("15", "false", "15∈[10,20]|count: 1/5", true, 1),
				transition("12", "false", "12∈[10,20]|count: 2/5", true, 2),
				transition("3", "false", "3∉[10,20]|RESET to 0/5", false, 0),
				transition("18", "false", "18∈[10,20]|count: 1/5", true, 1),
				transition("14", "false", "14∈[10,20]|count: 2/5", true, 2),
				transition("16", "false", "16∈[10,20]|count: 3/5", true, 3),
				transition("30", "false", "30∉[10,20]|RESET to 0/5", false, 0),
				transition("10", "false", "10∈[10,20]|count: 1/5", true, 1),
				transition("11", "false", "11∈[10,20]|count: 2/5", true, 2),
				transition("12", "false", "12∈[10,20]|count: 3/5", true, 3),
				transition("13", "false", "13∈[10,20]|count: 4/5", true, 4),
				transition("14", "true", "14∈[10,20]|count: 5/5 Completed!", true, 0),
			},
			Speed:         2,
			LineSpacing:   0.4,
			ColumnSpacing: 4,
		},
		{
			Name:       "multi_count_state_transition",
			Kind:       StateTransition,
			Output:     "multi_count_state_transition",
			Expression: []string{"{==0}", "->", "{count!(>4, 3)}", "->", "{count!(<2, 2)}"},
			Steps: []Step{
				transition("5", "false", "5≠0|Stay in State 0", false, 0),
				transition("2", "false", "2≠0|Stay in State 0", false, 0),
				transition("0", "false", "0==0|To State 1", true, 1),
				transition("6", "false", "6>4|Count: 1/3", true, 1),
				transition("7", "false", "7>4|Count: 2/3", true, 1),
				transition("3", "false", "3≤4|RESET to 0/3", false, 1),
				transition("8", "false", "8>4|Count: 1/3", true, 1),
				transition("5", "false", "5>4|Count: 2/3", true, 1),
				transition("9", "false", "9>4|Count: 3/3 ,to State 2", true, 2),
				transition("1", "false", "1<2|Count: 1/2", true, 2),
				transition("3", "false", "3≥2|RESET to 0/2", false, 2),
				transition("0", "false", "0<2|Count: 1/2", true, 2),
				transition("1", "true", "1<2|Count: 2/2|SUCCESS!", true, 0),
				transition("4", "false", "4≠0|Stay in State 0", false, 0),
			},
			Speed:         2,
			LineSpacing:   0.5,
			ColumnSpacing: 4,
		},
	}
}
