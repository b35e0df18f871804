package demo

// stateDemos are the state machine demos. State n is the part at index 2n.
func stateDemos() []Definition {
	return []Definition{
		{
			Name:   "state_transition",
			Kind:   StateTransition,
			Output: "state_transition_enhanced",
			Steps: []Step{
				transition("2", "false", "2≠0", false, 0),
				transition("0", "false", "0==0", true, 1),
				transition("2", "false", "2≠1", false, 1),
				transition("0", "false", "0==0", true, 1),
				transition("1", "true", "1==1 SUCCESS!", true, 0),
				transition("1", "false", "1≠0", false, 0),
				transition("0", "false", "0==0", true, 1),
				transition("0", "false", "0!=1", false, 1),
				transition("0", "false", "waiting for 1", false, 1),
				transition("1", "true", "1==1 SUCCESS!", true, 0),
			},
			Speed: 1.5,
		},
		{
			Name:       "complex_state_transition",
			Kind:       StateTransition,
			Output:     "complex_state_transition",
			Expression: []string{"{>1}", "->", "{count(<1,3)}", "->", "{==3}"},
			Steps: []Step{
				transition("0", "false", "0≤1", false, 0),
				transition("2", "false", "2>1 ✓", true, 1),
				transition("0", "false", "0<1 (1/3)", true, 1),
				transition("-1", "false", "-1<1 (2/3)", true, 1),
				transition("0.5", "false", "0.5<1 (3/3)", true, 2),
				transition("2", "false", "2≠3", false, 2),
				transition("3", "true", "3==3 SUCCESS!", true, 0),
				transition("5", "false", "5>1 ✓", true, 1),
				transition("0", "false", "0<1 (1/3)", true, 1),
				transition("-0.5", "false", "-0.5<1 (2/3)", true, 1),
				transition("0.1", "false", "0.1<1 (3/3)", true, 2),
				transition("3", "true", "3==3 SUCCESS!", true, 0),
				transition("10", "false", "10>1 ✓", true, 1),
				transition("0", "false", "0<1 (1/3)", true, 1),
				transition("2", "false", "2≥1, reset", false, 0),
			},
			Speed: 1.2,
		},
		{
			Name:       "equal_chain_state_transition",
			Kind:       StateTransition,
			Output:     "equal_chain_state_transition",
			Expression: []string{"{==0}", "=>", "{==1}", "=>", "{==0}"},
			Steps: []Step{
				transition("2", "false", "2≠0", false, 0),
				transition("0", "false", "0==0 ✓", true, 1),
				transition("2", "false", "2≠1", false, 1),
				transition("1", "false", "1==1 ✓", true, 2),
				transition("3", "false", "3≠0", false, 2),
				transition("0", "true", "0==0 SUCCESS!", true, 0),
				transition("0", "false", "0==0 ✓", true, 1),
				transition("1", "false", "1==1 ✓", true, 2),
				transition("0", "true", "0==0 SUCCESS!", true, 0),
				transition("0", "false", "0==0 ✓ (back to state 1)", true, 1),
				transition("0", "false", "0≠1 (still waiting for 1)", false, 1),
			},
			Speed: 1.2,
		},
		{
			Name:       "logical_and_state_transition",
			Kind:       StateTransition,
			Output:     "logical_and_state_transition",
			Expression: []string{"{!=0&&!=2}", "->", "{==1}"},
			Steps: []Step{
				transition("0", "false", "0==0|first condition fails", false, 0),
				transition("2", "false", "2==2|second condition fails", false, 0),
				transition("1", "false", "1≠0&&1≠2|both conditions true", true, 1),
				transition("3", "false", "3≠1|wrong value", false, 1),
				transition("0", "false", "0≠1|wrong value", false, 1),
				transition("1", "true", "1==1|SUCCESS", true, 0),
				transition("3", "false", "3≠0&&3≠2|both conditions true", true, 1),
				transition("1", "true", "1==1|SUCCESS", true, 0),
				transition("-1", "false", "-1≠0&&-1≠2|both conditions true", true, 1),
				transition("2", "false", "2≠1|wrong value", false, 1),
				transition("1", "true", "1==1|SUCCESS", true, 0),
				transition("0", "false", "0==0|first condition fails", false, 0),
				transition("2", "false", "2==2|second condition fails", false, 0),
				transition("5", "false", "5≠0&&5≠2|both conditions true", true, 1),
				transition("4", "false", "4≠1|wrong value", false, 1),
				transition("1", "true", "1==1|SUCCESS", true, 0),
			},
			Speed:         1,
			LineSpacing:   0.4,
			ColumnSpacing: 4,
		},
		{
			Name:       "interval_state_transition",
			Kind:       StateTransition,
			Output:     "interval_state_transition",
			Expression: []string{"{(1,3]}", "->", "{[4,7)}"},
			Steps: []Step{
				transition("1.0", "false", "1.0∉(1,3]|1 not included", false, 0),
				transition("0.5", "false", "0.5∉(1,3]|too small", false, 0),
				transition("1.5", "false", "1.5∈(1,3]|1<1.5≤3", true, 1),
				transition("3.5", "false", "3.5∉[4,7)|too small", false, 1),
				transition("7.0", "false", "7.0∉[4,7)|7 not included", false, 1),
				transition("5.0", "true", "5.0∈[4,7]|SUCCESS", true, 0),
				transition("3.0", "false", "3.0∈(1,3]|boundary case", true, 1),
				transition("4.0", "true", "4.0∈[4,7)|SUCCESS", true, 0),
				transition("4.0", "false", "4.0∉(1,3]|too large", false, 0),
				transition("2.5", "false", "2.5∈(1,3]|1<2.5≤3", true, 1),
				transition("8.0", "false", "8.0∉[4,7)|too large", false, 1),
				transition("2.0", "false", "2.0∈(1,3]|restart", true, 1),
				transition("6.5", "true", "6.5∈[4,7)|SUCCESS", true, 0),
			},
			Speed:         1,
			LineSpacing:   0.4,
			ColumnSpacing: 4.5,
		},
		{
			Name:       "range_state_transition",
			Kind:       StateTransition,
			Output:     "range_state_transition",
			Expression: []string{"{>=0.5}", "->", "{<=0.8}"},
			Steps: []Step{
				transition("0.3", "false", "0.3<0.5", false, 0),
				transition("0.2", "false", "0.2<0.5", false, 0),
				transition("0.5", "false", "0.5≥0.5", true, 1),
				transition("0.9", "false", "0.9>0.8", false, 1),
				transition("1.2", "false", "1.2>0.8", false, 1),
				transition("0.8", "true", "0.8≤0.8|completed", true, 0),
				transition("0.7", "false", "0.7≥0.5|restart", true, 1),
				transition("0.6", "true", "0.6≤0.8|completed", true, 0),
				transition("0.5", "false", "0.5≥0.5|restart", true, 1),
				transition("0.8", "true", "0.8≤0.8|completed", true, 0),
				transition("2.0", "false", "2.0≥0.5|restart", true, 1),
				transition("1.5", "false", "1.5>0.8", false, 1),
				transition("0.95", "false", "0.95>0.8", false, 1),
				transition("0.75", "true", "0.75≤0.8|completed", true, 0),
			},
			Speed:         1.1,
			LineSpacing:   0.5,
			ColumnSpacing: 3,
		},
	}
}
