package domain

import (
	interfaces "kembang/internal/domain/interfaces"
	types "kembang/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	DomainCode             = types.DomainCode
	Age                    = types.Age
	Pagination             = types.Pagination
	MessageResponse        = types.MessageResponse
	User                   = types.User
	LoginRequest           = types.LoginRequest
	RegisterRequest        = types.RegisterRequest
	AuthResponse           = types.AuthResponse
	Credentials            = types.Credentials
	Gender                 = types.Gender
	Child                  = types.Child
	CreateChildRequest     = types.CreateChildRequest
	UpdateChildRequest     = types.UpdateChildRequest
	Asq3Domain             = types.Asq3Domain
	AgeInterval            = types.AgeInterval
	Question               = types.Question
	Cutoff                 = types.Cutoff
	QuestionsByDomain      = types.QuestionsByDomain
	QuestionSet            = types.QuestionSet
	Recommendation         = types.Recommendation
	ScreeningStatus        = types.ScreeningStatus
	ResultStatus           = types.ResultStatus
	AnswerValue            = types.AnswerValue
	DomainRef              = types.DomainRef
	DomainResult           = types.DomainResult
	Screening              = types.Screening
	CreateScreeningRequest = types.CreateScreeningRequest
	UpdateScreeningRequest = types.UpdateScreeningRequest
	AnswerInput            = types.AnswerInput
	SubmitAnswersRequest   = types.SubmitAnswersRequest
	ScreeningSummary       = types.ScreeningSummary
	ScreeningResults       = types.ScreeningResults

	MeasurementLocation        = types.MeasurementLocation
	ZScores                    = types.ZScores
	NutritionalStatus          = types.NutritionalStatus
	Anthropometry              = types.Anthropometry
	CreateAnthropometryRequest = types.CreateAnthropometryRequest
	AnthropometryListOptions   = types.AnthropometryListOptions

	PmtPortion               = types.PmtPortion
	PmtMenuNutrition         = types.PmtMenuNutrition
	PmtMenuAgeRange          = types.PmtMenuAgeRange
	PmtMenu                  = types.PmtMenu
	PmtLog                   = types.PmtLog
	PmtScheduleMenu          = types.PmtScheduleMenu
	PmtSchedule              = types.PmtSchedule
	PmtPeriod                = types.PmtPeriod
	CreatePmtScheduleRequest = types.CreatePmtScheduleRequest
	PmtLogRequest            = types.PmtLogRequest
	PmtProgressSummary       = types.PmtProgressSummary
	PmtConsumptionBreakdown  = types.PmtConsumptionBreakdown
	PmtProgress              = types.PmtProgress
)

// Portions lists every PMT portion, largest first.
var Portions = types.Portions

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AuthAPI         = interfaces.AuthAPI
	ChildrenAPI     = interfaces.ChildrenAPI
	Asq3API         = interfaces.Asq3API
	ScreeningAPI    = interfaces.ScreeningAPI
	GrowthAPI       = interfaces.GrowthAPI
	PmtAPI          = interfaces.PmtAPI
	BackendClient   = interfaces.BackendClient
	CredentialStore = interfaces.CredentialStore
	ActiveChild     = interfaces.ActiveChild
	PreferenceStore = interfaces.PreferenceStore
	AccountService  = interfaces.AccountService
)

// Constants re-exported for callers that only import domain.
const (
	DomainCommunication  = types.DomainCommunication
	DomainGrossMotor     = types.DomainGrossMotor
	DomainFineMotor      = types.DomainFineMotor
	DomainProblemSolving = types.DomainProblemSolving
	DomainPersonalSocial = types.DomainPersonalSocial

	GenderMale   = types.GenderMale
	GenderFemale = types.GenderFemale
	GenderOther  = types.GenderOther

	LocationPosyandu = types.LocationPosyandu
	LocationHome     = types.LocationHome
	LocationClinic   = types.LocationClinic
	LocationHospital = types.LocationHospital
	LocationOther    = types.LocationOther

	PortionHabis   = types.PortionHabis
	PortionHalf    = types.PortionHalf
	PortionQuarter = types.PortionQuarter
	PortionNone    = types.PortionNone

	ScreeningInProgress = types.ScreeningInProgress
	ScreeningCompleted  = types.ScreeningCompleted
	ScreeningCancelled  = types.ScreeningCancelled

	ResultSesuai       = types.ResultSesuai
	ResultPantau       = types.ResultPantau
	ResultPerluRujukan = types.ResultPerluRujukan

	AnswerYes       = types.AnswerYes
	AnswerSometimes = types.AnswerSometimes
	AnswerNo        = types.AnswerNo
)
