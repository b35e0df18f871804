package demo

var chainExpression = []string{"filter((-5,5))", ".", "limit(5)", ".", "take(0,2)", ".", "sum()", ".", "meet(>1)"}

// chainDemos are the filter/window pipelines. Every stage is part of one
// state, so the first part stays highlighted.
func chainDemos() []Definition {
	return []Definition{
		{
			Name:       "chain_expression",
			Kind:       StateTransition,
			Output:     "chain_expression_demo",
			Expression: chainExpression,
			Steps: []Step{
				transition("6", "false", "6∉(-5,5)|FILTERED OUT", false, 0),
				transition("-6", "false", "-6∉(-5,5)|FILTERED OUT", false, 0),
				transition("2", "false", "2∈(-5,5)|Queue:[2]|Need 2 elements", false, 0),
				transition("1", "true", "1∈(-5,5)|Queue:[2,1]|Take:[2,1]|Sum:3|3>1✓", true, 0),
				transition("-3", "true", "-3∈(-5,5)|Queue:[2,1,-3]|Take:[2,1]|Sum:3|3>1✓", true, 0),
				transition("0", "true", "0∈(-5,5)|Queue:[2,1,-3,0]|Take:[2,1]|Sum:3|3>1✓", true, 0),
				transition("4", "true", "4∈(-5,5)|Queue:[2,1,-3,0,4]|Take:[2,1]|Sum:3|3>1✓", true, 0),
				transition("-1", "false", "-1∈(-5,5)|Queue:[1,-3,0,4,-1]|Take:[1,-3]|Sum:-2|-2>1✗", false, 0),
				transition("-2", "false", "-2∈(-5,5)|Queue:[-3,0,4,-1,-2]|Take:[-3,0]|Sum:-3|-3>1✗", false, 0),
				transition("3", "true", "3∈(-5,5)|Queue:[0,4,-1,-2,3]|Take:[0,4]|Sum:4|4>1✓", true, 0),
				transition("-4", "true", "-4∈(-5,5)|Queue:[4,-1,-2,3,-4]|Take:[4,-1]|Sum:3|3>1✓", true, 0),
				transition("1", "false", "1∈(-5,5)|Queue:[-1,-2,3,-4,1]|Take:[-1,-2]|Sum:-3|-3>1✗", false, 0),
				transition("2", "false", "2∈(-5,5)|Queue:[-2,3,-4,1,2]|Take:[-2,3]|Sum:1|1>1✗", false, 0),
				transition("4", "false", "4∈(-5,5)|Queue:[3,-4,1,2,4]|Take:[3,-4]|Sum:-1|-1>1✗", false, 0),
				transition("-1", "false", "-1∈(-5,5)|Queue:[-4,1,2,4,-1]|Take:[-4,1]|Sum:-3|-3>1✗", false, 0),
				transition("3", "true", "3∈(-5,5)|Queue:[1,2,4,-1,3]|Take:[1,2]|Sum:3|3>1✓", true, 0),
			},
			Speed:         1,
			LineSpacing:   0.3,
			ColumnSpacing: 3.8,
		},
		{
			Name:       "chain_expression_with_queue",
			Kind:       StateTransition,
			Output:     "chain_expression_demo_with_queue",
			Expression: chainExpression,
			Steps: []Step{
				transition("6", "false", "6∉(-5,5)|FILTERED OUT", false, 0).WithSubtitle("Queue:[]"),
				transition("-6", "false", "-6∉(-5,5)|FILTERED OUT", false, 0).WithSubtitle("Queue:[]"),
				transition("2", "false", "2∈(-5,5)|Need 2 elements", false, 0).WithSubtitle("Queue:[2]"),
				transition("1", "true", "1∈(-5,5)|2+1=3,RESTART", true, 0).WithSubtitle("Queue:[2,1]"),
				transition("-3", "true", "-3∈(-5,5)|Need 2 elements", true, 0).WithSubtitle("Queue:[-3]"),
				transition("0", "true", "0∈(-5,5)|-3+0=-3", true, 0).WithSubtitle("Queue:[-3,0]"),
				transition("4", "true", "4∈(-5,5)|0+4=4,RESTART", true, 0).WithSubtitle("Queue:[-3,0,4]"),
				transition("-1", "false", "-1∈(-5,5)|Need 2 elements", false, 0).WithSubtitle("Queue:[-1]"),
				transition("-2", "false", "-2∈(-5,5)|-2-1=-3", false, 0).WithSubtitle("Queue:[-1,-2]"),
				transition("3", "true", "3∈(-5,5)|-2+3=1", true, 0).WithSubtitle("Queue:[-1,-2,3]"),
				transition("-4", "true", "-4∈(-5,5)|3-4=-1", true, 0).WithSubtitle("Queue:[-1,-2,3,-4]"),
				transition("3", "true", "-4∈(-5,5)|-4+3=-1", true, 0).WithSubtitle("Queue:[-1,-2,3,-4,3]"),
				transition("-2", "false", "-6∈(-5,5)|3-2=1,delete first element", false, 0).WithSubtitle("Queue:[-2,3,-4,3,-2]"),
				transition("4", "false", "8∈(-5,5)|-2+4=2,RESTART", false, 0).WithSubtitle("Queue:[3,-4,3,-2,4]"),
			},
			Speed:         1.5,
			LineSpacing:   0.3,
			ColumnSpacing: 3.8,
			Width:         900,
			Height:        400,
		},
		{
			// Windows are partial until three values passed the filter.
			Name:       "filter_window_avg_meet",
			Kind:       StateTransition,
			Output:     "filter_window_avg_meet",
			Expression: []string{"filter(>0)", ".", "window(3)", ".", "avg()", ".", "meet(>50)"},
			Steps: []Step{
				transition("30", "false", "30>0|Window:[30]|Avg:30|30>50✗", false, 0),
				transition("-10", "false", "-10≤0|FILTERED OUT", false, 0),
				transition("60", "false", "60>0|Window:[30,60]|Avg:45|45>50✗", false, 0),
				transition("90", "true", "90>0|Window:[30,60,90]|Avg:60|60>50✓", true, 0),
				transition("-5", "false", "-5≤0|FILTERED OUT", false, 0),
				transition("20", "true", "20>0|Window:[60,90,20]|Avg:56.7|56.7>50✓", true, 0),
				transition("80", "true", "80>0|Window:[90,20,80]|Avg:63.3|63.3>50✓", true, 0),
				transition("10", "false", "10>0|Window:[20,80,10]|Avg:36.7|36.7>50✗", false, 0),
				transition("70", "true", "70>0|Window:[80,10,70]|Avg:53.3|53.3>50✓", true, 0),
				transition("5", "false", "5>0|Window:[10,70,5]|Avg:28.3|28.3>50✗", false, 0),
			},
			Speed:         1.2,
			LineSpacing:   0.3,
			ColumnSpacing: 3.8,
		},
	}
}
