package models

// DashboardStats is the aggregate dashboard view. Only TotalAgents and
// ActiveAgents are recomputed from live state; the rest are seeded by the
// analytics pipeline upstream.
type DashboardStats struct {
	TotalAgents        int     `json:"total_agents"`
	ActiveAgents       int     `json:"active_agents"`
	TotalMessages      int     `json:"total_messages"`
	MessagesThisWeek   int     `json:"messages_this_week"`
	MessagesLastWeek   int     `json:"messages_last_week"`
	TotalConversations int     `json:"total_conversations"`
	AvgResponseTime    string  `json:"avg_response_time"`
	SatisfactionRate   float64 `json:"satisfaction_rate"`
}

// WeeklyMessageData is one bar of the weekly message chart
type WeeklyMessageData struct {
	Day      string `json:"day"`
	Messages int    `json:"messages"`
}
