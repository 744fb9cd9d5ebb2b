package featuregate

var catalog = map[Feature]Info{
	ProfitFactor: {
		Title:       "Profit Factor",
		Description: "See how much you earn for every unit you lose.",
		Benefits: []string{
			"Gross profit versus gross loss at a glance",
			"Spot strategies that win often but lose big",
			"Track improvement month over month",
		},
	},
	MonthlyPerformance: {
		Title:       "Monthly Performance",
		Description: "Break your results down month by month.",
		Benefits: []string{
			"Monthly profit and win rate",
			"Identify your strongest and weakest months",
			"Compare cycles side by side",
		},
	},
	InstrumentPerformance: {
		Title:       "Instrument Performance",
		Description: "Find out which pairs and symbols actually pay you.",
		Benefits: []string{
			"Profit, pips and win rate per instrument",
			"Drop instruments that drain your account",
			"Focus on your best markets",
		},
	},
	UnlimitedCalendarEvents: {
		Title:       "Unlimited Calendar Events",
		Description: "Free accounts can keep 10 calendar events per cycle. Pro removes the cap.",
		Benefits: []string{
			"Unlimited market news and economic events",
			"Unlimited trade ideas, reviews and reminders",
			"Plan your whole trading month",
		},
	},
	AdvancedAnalytics: {
		Title:       "Advanced Analytics",
		Description: "Deeper statistics on every trade you log.",
		Benefits: []string{
			"Average win and loss",
			"Largest win and loss",
			"Return on initial balance",
		},
	},
	DrawdownAnalysis: {
		Title:       "Drawdown Analysis",
		Description: "Measure the deepest fall from your equity peak.",
		Benefits: []string{
			"Maximum drawdown in amount and percent",
			"Understand your real risk exposure",
		},
	},
	StreakAnalysis: {
		Title:       "Streak Analysis",
		Description: "Know your winning and losing streaks.",
		Benefits: []string{
			"Longest win and loss streaks",
			"Current streak tracking",
		},
	},
	TradeExport: {
		Title:       "Trade Export",
		Description: "Download your journal as a spreadsheet.",
		Benefits: []string{
			"All trades in one workbook",
			"Summary sheet with key statistics",
		},
	},
	PerformanceTargets: {
		Title:       "Performance Targets",
		Description: "Set profit and win-rate targets and follow your progress.",
		Benefits: []string{
			"Monthly profit targets",
			"Win-rate goals",
		},
	},
}
