package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/nightclaw/mission-control/docs"
	"github.com/nightclaw/mission-control/internal/config"
	"github.com/nightclaw/mission-control/internal/middleware"
	"github.com/nightclaw/mission-control/internal/modules/handler"
	"github.com/nightclaw/mission-control/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	OverviewHandler *handler.OverviewHandler
	ProjectHandler  *handler.ProjectHandler
	DevLogHandler   *handler.DevLogHandler
	GoalHandler     *handler.GoalHandler
	NoteHandler     *handler.NoteHandler
	MonitorHandler  *handler.MonitorHandler
	IdeaHandler     *handler.IdeaHandler
	IncomeHandler   *handler.IncomeHandler
	ScheduleHandler *handler.ScheduleHandler
	WinHandler      *handler.WinHandler
	CRMHandler      *handler.CRMHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// ping endpoint
		v1.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "pong"}) })

		v1.GET("/overview", d.OverviewHandler.Overview)

		project := v1.Group("/project")
		{
			project.GET("", d.ProjectHandler.ListProjects)
			project.POST("", d.ProjectHandler.CreateProject)
			project.PUT("/:project_id/status", d.ProjectHandler.SetProjectStatus)
			project.DELETE("/:project_id", d.ProjectHandler.DeleteProject)
		}

		devlog := v1.Group("/devlog")
		{
			devlog.GET("", d.DevLogHandler.ListLogs)
			devlog.POST("", d.DevLogHandler.CreateLog)
			devlog.DELETE("/:entry_id", d.DevLogHandler.DeleteLog)
		}

		goal := v1.Group("/goal")
		{
			goal.GET("", d.GoalHandler.ListGoals)
			goal.POST("", d.GoalHandler.CreateGoal)
			goal.PUT("/:goal_id/toggle", d.GoalHandler.ToggleGoal)
			goal.DELETE("/:goal_id", d.GoalHandler.DeleteGoal)
		}

		note := v1.Group("/note")
		{
			note.GET("", d.NoteHandler.ListNotes)
			note.POST("", d.NoteHandler.CreateNote)
			note.PUT("/:note_id", d.NoteHandler.EditNote)
			note.DELETE("/:note_id", d.NoteHandler.DeleteNote)
		}

		monitor := v1.Group("/monitor")
		{
			monitor.GET("", d.MonitorHandler.ListMonitors)
			monitor.POST("", d.MonitorHandler.CreateMonitor)
			monitor.POST("/check", d.MonitorHandler.CheckAllMonitors)
			monitor.POST("/:monitor_id/check", d.MonitorHandler.CheckMonitor)
			monitor.DELETE("/:monitor_id", d.MonitorHandler.DeleteMonitor)
		}

		idea := v1.Group("/idea")
		{
			idea.GET("", d.IdeaHandler.ListIdeas)
			idea.POST("", d.IdeaHandler.CreateIdea)
			idea.PUT("/:idea_id/status", d.IdeaHandler.SetIdeaStatus)
			idea.DELETE("/:idea_id", d.IdeaHandler.DeleteIdea)
		}

		income := v1.Group("/income")
		{
			income.GET("", d.IncomeHandler.ListIncome)
			income.GET("/stats", d.IncomeHandler.IncomeStats)
			income.POST("", d.IncomeHandler.CreateIncome)
			income.DELETE("/:entry_id", d.IncomeHandler.DeleteIncome)
		}

		schedule := v1.Group("/schedule")
		{
			schedule.GET("", d.ScheduleHandler.Schedule)
			schedule.POST("/task", d.ScheduleHandler.AddTask)
			schedule.PUT("/:date/:task_id/toggle", d.ScheduleHandler.ToggleTask)
			schedule.DELETE("/:date/:task_id", d.ScheduleHandler.RemoveTask)
		}

		win := v1.Group("/win")
		{
			win.GET("", d.WinHandler.ListWins)
			win.GET("/streak", d.WinHandler.WinStreak)
			win.POST("", d.WinHandler.CreateWin)
			win.DELETE("/:win_id", d.WinHandler.DeleteWin)
		}

		crm := v1.Group("/crm")
		{
			crm.GET("", d.CRMHandler.ListClients)
			crm.GET("/summary", d.CRMHandler.PipelineSummary)
			crm.POST("", d.CRMHandler.CreateClient)
			crm.PUT("/:client_id/stage", d.CRMHandler.SetClientStage)
			crm.DELETE("/:client_id", d.CRMHandler.DeleteClient)
		}
	}
	return r
}
