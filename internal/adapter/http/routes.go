package http

import "github.com/labstack/echo/v4"

// Handlers bundles everything the router needs.
type Handlers struct {
	Base         *Handler
	Lead         *LeadHandler
	Analysis     *AnalysisHandler
	Risk         *RiskHandler
	Summary      *SummaryHandler
	Memo         *MemoHandler
	Notification *NotificationHandler
	QC           *QCHandler
	Dashboard    *DashboardHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Base.Health)

	e.GET("/leads", h.Lead.ListLeads)
	e.GET("/leads/:id", h.Lead.GetLead)
	e.POST("/leads", h.Lead.CreateLead)
	e.PUT("/leads/:id", h.Lead.UpdateLead)
	e.DELETE("/leads/:id", h.Lead.DeleteLead)
	e.POST("/leads/:id/results", h.Lead.IngestResults)
	e.POST("/leads/:id/aml/:target", h.Lead.SubmitAML)
	e.GET("/leads/:id/aml/:target", h.Lead.PollAML)
	e.DELETE("/leads/:id/aml/:target", h.Lead.CancelAML)

	e.GET("/analysis", h.Analysis.ListCompanies)
	e.GET("/analysis/:id", h.Analysis.GetCompanyDetail)
	e.GET("/analysis/:id/ratios", h.Analysis.GetRatioTable)

	e.GET("/risk", h.Risk.ListRisks)
	e.GET("/risk/:id", h.Risk.GetRiskDetail)

	e.GET("/summaries", h.Summary.ListSummaries)
	e.GET("/summaries/:id", h.Summary.GetSummary)

	e.GET("/memos", h.Memo.ListMemos)
	e.GET("/memos/eligible", h.Memo.ListEligible)
	e.GET("/memos/:id", h.Memo.GetMemo)
	e.POST("/memos/create", h.Memo.CreateMemo)
	e.PUT("/memos/:id/status", h.Memo.UpdateMemoStatus)

	e.GET("/dashboard", h.Dashboard.ListSnapshots)
	e.GET("/dashboard/:year", h.Dashboard.GetSnapshot)

	e.GET("/cq", h.QC.ListRecords)
	e.GET("/cq/:id", h.QC.GetRecord)
	e.POST("/cq", h.QC.CreateRecord)
	e.PUT("/cq/:id/approve", h.QC.ApproveRecord)
	e.PUT("/cq/:id/reject", h.QC.RejectRecord)

	e.GET("/notifications/user/:userId", h.Notification.ListByUser)
	e.GET("/notifications/unread/:userId", h.Notification.CountUnread)
	e.PUT("/notifications/read/:id", h.Notification.MarkRead)
	e.PUT("/notifications/read-all/:userId", h.Notification.MarkAllRead)
	e.POST("/notifications", h.Notification.CreateNotification)
	e.POST("/notifications/lead-reminder", h.Notification.CreateLeadReminder)
	e.POST("/notifications/check-lead-reminders", h.Notification.SweepLeadReminders)
	e.DELETE("/notifications/:id", h.Notification.DeleteNotification)
}
