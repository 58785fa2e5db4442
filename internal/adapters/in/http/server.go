package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/application/usecases/queries"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActingUserHeader carries the identifier of the user performing the request.
// Requests without it are rejected with 401.
const ActingUserHeader = "X-User-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	assignVehicleHandler           commands.AssignVehicleCommandHandler
	unassignVehicleHandler         commands.UnassignVehicleCommandHandler
	changeApplicationStatusHandler commands.ChangeApplicationStatusCommandHandler
	removeUserHandler              commands.RemoveUserCommandHandler
	markNotificationsReadHandler   commands.MarkNotificationsReadCommandHandler

	// Query handlers
	getDriverRosterHandler        queries.GetDriverRosterQueryHandler
	getApplicationsHandler        queries.GetApplicationsQueryHandler
	getUnreadNotificationsHandler queries.GetUnreadNotificationsQueryHandler
	getRecentActivityHandler      queries.GetRecentActivityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	unassignVehicleHandler commands.UnassignVehicleCommandHandler,
	changeApplicationStatusHandler commands.ChangeApplicationStatusCommandHandler,
	removeUserHandler commands.RemoveUserCommandHandler,
	markNotificationsReadHandler commands.MarkNotificationsReadCommandHandler,
	getDriverRosterHandler queries.GetDriverRosterQueryHandler,
	getApplicationsHandler queries.GetApplicationsQueryHandler,
	getUnreadNotificationsHandler queries.GetUnreadNotificationsQueryHandler,
	getRecentActivityHandler queries.GetRecentActivityQueryHandler,
) *Server {
	return &Server{
		assignVehicleHandler:           assignVehicleHandler,
		unassignVehicleHandler:         unassignVehicleHandler,
		changeApplicationStatusHandler: changeApplicationStatusHandler,
		removeUserHandler:              removeUserHandler,
		markNotificationsReadHandler:   markNotificationsReadHandler,
		getDriverRosterHandler:         getDriverRosterHandler,
		getApplicationsHandler:         getApplicationsHandler,
		getUnreadNotificationsHandler:  getUnreadNotificationsHandler,
		getRecentActivityHandler:       getRecentActivityHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/drivers", s.GetDrivers)
	api.POST("/drivers/:driverId/vehicle", s.AssignVehicle)
	api.DELETE("/drivers/:driverId/vehicle", s.UnassignVehicle)

	api.GET("/applications", s.GetApplications)
	api.POST("/applications/:applicationId/status", s.ChangeApplicationStatus)

	api.DELETE("/users/:userId", s.RemoveUser)

	api.GET("/notifications", s.GetUnreadNotifications)
	api.POST("/notifications/read", s.MarkNotificationsRead)

	api.GET("/activity", s.GetRecentActivity)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AssignVehicleRequest is the body for POST /api/v1/drivers/{driverId}/vehicle.
type AssignVehicleRequest struct {
	VehicleID int64 `json:"vehicleId"`
}

// ChangeApplicationStatusRequest is the body for POST /api/v1/applications/{applicationId}/status.
type ChangeApplicationStatusRequest struct {
	Status string `json:"status"`
}

// MarkNotificationsReadResponse reports how many notifications were flipped to read.
type MarkNotificationsReadResponse struct {
	MarkedRead int64 `json:"markedRead"`
}

// DriverState is the driver as committed by an assignment operation.
type DriverState struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"userId"`
	LicenseNumber     string `json:"licenseNumber"`
	AssignedVehicleID *int64 `json:"assignedVehicleId,omitempty"`
}

// VehicleState is the vehicle as committed by an assignment operation.
type VehicleState struct {
	ID           int64  `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"licensePlate"`
	WarehouseID  int64  `json:"warehouseId"`
}

// AssignVehicleResponse carries the updated driver and vehicle pair.
type AssignVehicleResponse struct {
	Driver  DriverState  `json:"driver"`
	Vehicle VehicleState `json:"vehicle"`
}

// UnassignVehicleResponse carries the driver with the assignment cleared.
type UnassignVehicleResponse struct {
	Driver DriverState `json:"driver"`
}

// ApplicationState is the application as committed by a review decision.
type ApplicationState struct {
	ID              int64     `json:"id"`
	VacancyID       int64     `json:"vacancyId"`
	UserID          int64     `json:"userId"`
	LicenseNumber   string    `json:"licenseNumber"`
	ResumePath      *string   `json:"resumePath,omitempty"`
	Status          string    `json:"status"`
	ApplicationDate time.Time `json:"applicationDate"`
}

func driverState(drv *driver.Driver) DriverState {
	state := DriverState{
		ID:            drv.ID().Value(),
		UserID:        drv.UserID().Value(),
		LicenseNumber: drv.LicenseNumber(),
	}
	if drv.HasAssignedVehicle() {
		vehicleID := drv.AssignedVehicleID().Value()
		state.AssignedVehicleID = &vehicleID
	}
	return state
}

// Driver is the roster entry returned by GET /api/v1/drivers.
type Driver struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	FullName       string  `json:"fullName"`
	LicenseNumber  string  `json:"licenseNumber"`
	VehicleDetails *string `json:"vehicleDetails,omitempty"`
	WarehouseName  *string `json:"warehouseName,omitempty"`
}

// Application is the review-queue entry returned by GET /api/v1/applications.
type Application struct {
	ID              int64     `json:"id"`
	ApplicantName   string    `json:"applicantName"`
	VacancyTitle    string    `json:"vacancyTitle"`
	LicenseNumber   string    `json:"licenseNumber"`
	Status          string    `json:"status"`
	ApplicationDate time.Time `json:"applicationDate"`
}

// Notification is an unread notification returned by GET /api/v1/notifications.
type Notification struct {
	ID          int64     `json:"id"`
	Message     string    `json:"message"`
	CreatedDate time.Time `json:"createdDate"`
}

// ActivityEntry is an audit record returned by GET /api/v1/activity.
type ActivityEntry struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	ActionType  string    `json:"actionType"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// GetDrivers handles GET /api/v1/drivers - retrieves the full driver roster.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetDriverRosterQuery()

	roster, err := s.getDriverRosterHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve drivers")
	}

	response := make([]Driver, len(roster))
	for i, entry := range roster {
		response[i] = Driver{
			ID:             entry.ID.Value(),
			UserID:         entry.UserID.Value(),
			FullName:       entry.FullName,
			LicenseNumber:  entry.LicenseNumber,
			VehicleDetails: entry.VehicleDetails,
			WarehouseName:  entry.WarehouseName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignVehicle handles POST /api/v1/drivers/{driverId}/vehicle - assigns a vehicle to a driver.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	driverID, err := pathID(ctx, "driverId")
	if err != nil {
		return err
	}

	var request AssignVehicleRequest
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	vehicleID, err := kernel.NewID(request.VehicleID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vehicle id: " + err.Error(),
		})
	}

	cmd, err := commands.NewAssignVehicleCommand(actingUserID, driverID, vehicleID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment data: " + err.Error(),
		})
	}

	drv, veh, err := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to assign vehicle")
	}

	return ctx.JSON(http.StatusOK, AssignVehicleResponse{
		Driver: driverState(drv),
		Vehicle: VehicleState{
			ID:           veh.ID().Value(),
			Make:         veh.Make(),
			Model:        veh.Model(),
			LicensePlate: veh.LicensePlate(),
			WarehouseID:  veh.WarehouseID().Value(),
		},
	})
}

// UnassignVehicle handles DELETE /api/v1/drivers/{driverId}/vehicle - releases a driver's vehicle.
func (s *Server) UnassignVehicle(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	driverID, err := pathID(ctx, "driverId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUnassignVehicleCommand(actingUserID, driverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
	}

	drv, err := s.unassignVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to unassign vehicle")
	}

	return ctx.JSON(http.StatusOK, UnassignVehicleResponse{Driver: driverState(drv)})
}

// GetApplications handles GET /api/v1/applications - retrieves the review queue.
func (s *Server) GetApplications(ctx echo.Context) error {
	query := queries.NewGetApplicationsQuery()

	applications, err := s.getApplicationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve applications")
	}

	response := make([]Application, len(applications))
	for i, entry := range applications {
		response[i] = Application{
			ID:              entry.ID.Value(),
			ApplicantName:   entry.ApplicantName,
			VacancyTitle:    entry.VacancyTitle,
			LicenseNumber:   entry.LicenseNumber,
			Status:          entry.Status.String(),
			ApplicationDate: entry.ApplicationDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeApplicationStatus handles POST /api/v1/applications/{applicationId}/status -
// records a review decision.
func (s *Server) ChangeApplicationStatus(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	applicationID, err := pathID(ctx, "applicationId")
	if err != nil {
		return err
	}

	var request ChangeApplicationStatusRequest
	if bindErr := ctx.Bind(&request); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeApplicationStatusCommand(actingUserID, applicationID, request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	app, err := s.changeApplicationStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to change application status")
	}

	return ctx.JSON(http.StatusOK, ApplicationState{
		ID:              app.ID().Value(),
		VacancyID:       app.VacancyID().Value(),
		UserID:          app.UserID().Value(),
		LicenseNumber:   app.LicenseNumber(),
		ResumePath:      app.ResumePath(),
		Status:          app.Status().String(),
		ApplicationDate: app.ApplicationDate(),
	})
}

// RemoveUser handles DELETE /api/v1/users/{userId} - removes a user and all dependent records.
func (s *Server) RemoveUser(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	userID, err := pathID(ctx, "userId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveUserCommand(actingUserID, userID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid removal request")
	}

	if handleErr := s.removeUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr, "Failed to remove user")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnreadNotifications handles GET /api/v1/notifications - retrieves the acting
// user's unread notifications.
func (s *Server) GetUnreadNotifications(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUnreadNotificationsQuery(actingUserID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid notifications request")
	}

	notifications, err := s.getUnreadNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve notifications")
	}

	response := make([]Notification, len(notifications))
	for i, entry := range notifications {
		response[i] = Notification{
			ID:          entry.ID.Value(),
			Message:     entry.Message,
			CreatedDate: entry.CreatedDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationsRead handles POST /api/v1/notifications/read - marks all of the
// acting user's notifications as read.
func (s *Server) MarkNotificationsRead(ctx echo.Context) error {
	actingUserID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationsReadCommand(actingUserID)
	if err != nil {
		return errorResponse(ctx, err, "Invalid request")
	}

	marked, err := s.markNotificationsReadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to mark notifications read")
	}

	return ctx.JSON(http.StatusOK, MarkNotificationsReadResponse{MarkedRead: marked})
}

// GetRecentActivity handles GET /api/v1/activity - retrieves the most recent audit
// entries. The optional "limit" query parameter defaults to 50.
func (s *Server) GetRecentActivity(ctx echo.Context) error {
	limit := 50
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit parameter",
			})
		}
		limit = parsed
	}

	query, err := queries.NewGetRecentActivityQuery(limit)
	if err != nil {
		return errorResponse(ctx, err, "Invalid activity request")
	}

	entries, err := s.getRecentActivityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve activity")
	}

	response := make([]ActivityEntry, len(entries))
	for i, entry := range entries {
		response[i] = ActivityEntry{
			ID:          entry.ID.Value(),
			UserID:      entry.UserID.Value(),
			ActionType:  entry.ActionType,
			Description: entry.Description,
			Timestamp:   entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actingUser extracts and validates the acting user identifier from the request header.
// The returned error is an *echo.HTTPError rendered by echo's error handler.
func actingUser(ctx echo.Context) (kernel.ID, error) {
	raw := ctx.Request().Header.Get(ActingUserHeader)
	if raw == "" {
		return kernel.ID{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing "+ActingUserHeader+" header")
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return kernel.ID{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid "+ActingUserHeader+" header")
	}

	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid "+ActingUserHeader+" header")
	}

	return id, nil
}

// pathID parses a positive integer identifier from a path parameter.
func pathID(ctx echo.Context, name string) (kernel.ID, error) {
	value, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return kernel.ID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" parameter")
	}

	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" parameter")
	}

	return id, nil
}

// errorResponse maps application errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}
