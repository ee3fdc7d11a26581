package domain

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
	RoleProducer   UserRole = "producer"
	RoleEditor     UserRole = "editor"
	RoleCameraman  UserRole = "cameraman"
	RoleAccountant UserRole = "accountant"
	RoleHR         UserRole = "hr"
	RoleSales      UserRole = "sales"
	RoleEmployee   UserRole = "employee"
)

type ProjectStatus string

const (
	ProjectPlanning       ProjectStatus = "planning"
	ProjectPreProduction  ProjectStatus = "pre_production"
	ProjectProduction     ProjectStatus = "production"
	ProjectPostProduction ProjectStatus = "post_production"
	ProjectReview         ProjectStatus = "review"
	ProjectCompleted      ProjectStatus = "completed"
	ProjectOnHold         ProjectStatus = "on_hold"
	ProjectCancelled      ProjectStatus = "cancelled"
)

type ProjectType string

const (
	ProjectCommercial  ProjectType = "commercial"
	ProjectCorporate   ProjectType = "corporate"
	ProjectDocumentary ProjectType = "documentary"
	ProjectMusicVideo  ProjectType = "music_video"
	ProjectShortFilm   ProjectType = "short_film"
	ProjectFeatureFilm ProjectType = "feature_film"
	ProjectTVSeries    ProjectType = "tv_series"
	ProjectSocialMedia ProjectType = "social_media"
	ProjectLiveEvent   ProjectType = "live_event"
	ProjectAnimation   ProjectType = "animation"
	ProjectOther       ProjectType = "other"
)

type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskInReview   TaskStatus = "in_review"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
)

// BoardColumns is the canonical column order for the task board.
// Every status gets a column, blocked included.
var BoardColumns = []TaskStatus{
	TaskBacklog, TaskTodo, TaskInProgress, TaskInReview, TaskBlocked, TaskDone,
}

type TaskPriority string

const (
	PriorityLowest  TaskPriority = "lowest"
	PriorityLow     TaskPriority = "low"
	PriorityMedium  TaskPriority = "medium"
	PriorityHigh    TaskPriority = "high"
	PriorityHighest TaskPriority = "highest"
)

type TaskType string

const (
	TaskKindTask      TaskType = "task"
	TaskKindBug       TaskType = "bug"
	TaskKindStory     TaskType = "story"
	TaskKindEpic      TaskType = "epic"
	TaskKindSubtask   TaskType = "subtask"
	TaskKindMilestone TaskType = "milestone"
)

type ClientType string

const (
	ClientAgency            ClientType = "agency"
	ClientBrand             ClientType = "brand"
	ClientProductionCompany ClientType = "production_company"
	ClientBroadcaster       ClientType = "broadcaster"
	ClientStreamingPlatform ClientType = "streaming_platform"
	ClientIndividual        ClientType = "individual"
	ClientNonProfit         ClientType = "non_profit"
	ClientGovernment        ClientType = "government"
	ClientOther             ClientType = "other"
)

type LeadStatus string

const (
	LeadNew          LeadStatus = "new"
	LeadContacted    LeadStatus = "contacted"
	LeadQualified    LeadStatus = "qualified"
	LeadProposalSent LeadStatus = "proposal_sent"
	LeadNegotiation  LeadStatus = "negotiation"
	LeadWon          LeadStatus = "won"
	LeadLost         LeadStatus = "lost"
)

type LeadSource string

const (
	SourceWebsite       LeadSource = "website"
	SourceReferral      LeadSource = "referral"
	SourceSocialMedia   LeadSource = "social_media"
	SourceColdCall      LeadSource = "cold_call"
	SourceEmailCampaign LeadSource = "email_campaign"
	SourceTradeShow     LeadSource = "trade_show"
	SourcePartnership   LeadSource = "partnership"
	SourceRepeatClient  LeadSource = "repeat_client"
	SourceOther         LeadSource = "other"
)

type DealStage string

const (
	DealDiscovery   DealStage = "discovery"
	DealProposal    DealStage = "proposal"
	DealNegotiation DealStage = "negotiation"
	DealContract    DealStage = "contract"
	DealClosedWon   DealStage = "closed_won"
	DealClosedLost  DealStage = "closed_lost"
)

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoiceViewed    InvoiceStatus = "viewed"
	InvoicePartial   InvoiceStatus = "partial"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

type ExpenseStatus string

const (
	ExpensePending    ExpenseStatus = "pending"
	ExpenseApproved   ExpenseStatus = "approved"
	ExpenseRejected   ExpenseStatus = "rejected"
	ExpenseReimbursed ExpenseStatus = "reimbursed"
)

// ValidExpenseCategories is the canonical set of accepted expense categories.
var ValidExpenseCategories = map[string]bool{
	"equipment_rental": true, "talent": true, "crew": true, "location": true,
	"catering": true, "transportation": true, "accommodation": true,
	"post_production": true, "music_licensing": true, "props": true,
	"wardrobe": true, "insurance": true, "permits": true, "software": true,
	"marketing": true, "office": true, "utilities": true, "other": true,
}

type EquipmentCategory string

const (
	EquipCamera   EquipmentCategory = "camera"
	EquipLens     EquipmentCategory = "lens"
	EquipLighting EquipmentCategory = "lighting"
	EquipAudio    EquipmentCategory = "audio"
	EquipGrip     EquipmentCategory = "grip"
	EquipSupport  EquipmentCategory = "support"
	EquipDrone    EquipmentCategory = "drone"
	EquipMonitor  EquipmentCategory = "monitor"
	EquipStorage  EquipmentCategory = "storage"
	EquipComputer EquipmentCategory = "computer"
	EquipSoftware EquipmentCategory = "software"
	EquipVehicle  EquipmentCategory = "vehicle"
	EquipOther    EquipmentCategory = "other"
)

type EquipmentStatus string

const (
	EquipAvailable   EquipmentStatus = "available"
	EquipInUse       EquipmentStatus = "in_use"
	EquipReserved    EquipmentStatus = "reserved"
	EquipMaintenance EquipmentStatus = "maintenance"
	EquipDamaged     EquipmentStatus = "damaged"
	EquipRetired     EquipmentStatus = "retired"
)

type EmploymentType string

const (
	EmployFullTime  EmploymentType = "full_time"
	EmployPartTime  EmploymentType = "part_time"
	EmployContract  EmploymentType = "contract"
	EmployFreelance EmploymentType = "freelance"
	EmployIntern    EmploymentType = "intern"
)

type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveMaternity LeaveType = "maternity"
	LeavePaternity LeaveType = "paternity"
	LeaveUnpaid    LeaveType = "unpaid"
)

type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

type ShootType string

const (
	ShootStudio      ShootType = "studio"
	ShootOnLocation  ShootType = "on_location"
	ShootGreenScreen ShootType = "green_screen"
	ShootInterview   ShootType = "interview"
	ShootBRoll       ShootType = "b_roll"
	ShootAerial      ShootType = "aerial"
	ShootUnderwater  ShootType = "underwater"
	ShootLiveEvent   ShootType = "live_event"
	ShootOther       ShootType = "other"
)

type ScheduleStatus string

const (
	ScheduleTentative  ScheduleStatus = "tentative"
	ScheduleConfirmed  ScheduleStatus = "confirmed"
	ScheduleInProgress ScheduleStatus = "in_progress"
	ScheduleCompleted  ScheduleStatus = "completed"
	SchedulePostponed  ScheduleStatus = "postponed"
	ScheduleCancelled  ScheduleStatus = "cancelled"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingReturned   BookingStatus = "returned"
	BookingCancelled  BookingStatus = "cancelled"
)
