package handlers

import (
	userRepo "dealroom/database/repository/user"
)

// HandlerBundle aggregates the handlers and the repositories the route
// middleware needs, assembled once in main.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	User       *UserHandler
	Deal       *DealHandler
	Invitation *InvitationHandler
	Document   *DocumentHandler
	QA         *QAHandler
	Commitment *CommitmentHandler
	Checklist  *ChecklistHandler
	Lender     *LenderHandler
	Reminder   *ReminderHandler
}
