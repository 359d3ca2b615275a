package main

import (
	"net/http"
	"strings"
	"time"

	"financetracker/db/generated"
	"financetracker/logging"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// reminderLabel describes a due date relative to the current day
func reminderLabel(due, day time.Time) string {
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case due.Equal(day):
		return "Today"
	case due.Equal(day.AddDate(0, 0, 1)):
		return "Tomorrow"
	case due.Before(day):
		return "Overdue"
	}
	return due.Format("Jan 02, 2006")
}

func convertReminder(r generated.Reminder, day time.Time) Reminder {
	reminder := Reminder{
		ID:          uuidString(r.ID),
		Title:       r.Title,
		DueDate:     dateString(r.DueDate),
		IsCompleted: r.IsCompleted,
		CreatedAt:   r.CreatedAt.Time,
	}
	if r.Description.Valid {
		reminder.Description = &r.Description.String
	}
	if r.DueDate.Valid {
		reminder.Status = reminderLabel(r.DueDate.Time, day)
	}
	return reminder
}

// Reminder handler functions

// @Summary Get reminders
// @Description Retrieve all reminders by due date with a status label (Today, Tomorrow, Overdue or the date)
// @Tags reminders
// @Produce json
// @Success 200 {array} Reminder "List of reminders"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reminders [get]
func getReminders(c *gin.Context) {
	dbReminders, err := queries.GetReminders(c.Request.Context())
	if err != nil {
		logging.L().Error("fetching reminders", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	day := today()
	reminders := make([]Reminder, 0, len(dbReminders))
	for _, r := range dbReminders {
		reminders = append(reminders, convertReminder(r, day))
	}

	c.JSON(http.StatusOK, reminders)
}

// @Summary Create reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body ReminderRequest true "Reminder data"
// @Success 201 {object} Reminder "Created reminder"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reminders [post]
func createReminder(c *gin.Context) {
	var request ReminderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	request.Title = strings.TrimSpace(request.Title)
	if request.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
		return
	}
	dueDate, err := parseDate(request.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := generated.CreateReminderParams{
		Title:   request.Title,
		DueDate: dueDate,
	}
	if request.Description != nil && strings.TrimSpace(*request.Description) != "" {
		params.Description = pgtype.Text{String: *request.Description, Valid: true}
	}

	dbReminder, err := queries.CreateReminder(c.Request.Context(), params)
	if err != nil {
		logging.L().Error("creating reminder", zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, convertReminder(dbReminder, today()))
}

// @Summary Complete reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} Reminder "Completed reminder"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reminders/{id}/complete [put]
func completeReminder(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	dbReminder, err := queries.CompleteReminder(c.Request.Context(), id)
	if err != nil {
		logging.L().Error("completing reminder", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, convertReminder(dbReminder, today()))
}

// @Summary Delete reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} map[string]interface{} "Reminder deleted successfully"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reminders/{id} [delete]
func deleteReminder(c *gin.Context) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID"})
		return
	}

	deleted, err := queries.DeleteReminder(c.Request.Context(), id)
	if err != nil {
		logging.L().Error("deleting reminder", zap.String("id", c.Param("id")), zap.Error(err))
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
