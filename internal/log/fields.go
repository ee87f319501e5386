package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldOwnerID     = "owner_id"
	FieldRecordID    = "record_id"
	FieldGoalID      = "goal_id"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldTargetCents = "target_cents"
	FieldEntryDate   = "entry_date"
	FieldEmail       = "email"
	FieldDBPath      = "db_path"
	FieldMessageID   = "message_id"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentCLI       = "cli"
	ComponentAccount   = "account"
	ComponentLedger    = "ledger"
	ComponentDashboard = "dashboard"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentCache     = "cache"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpLogin    = "login"
	OpRegister = "register"
	OpPublish  = "publish"
	OpConsume  = "consume"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithOwner adds the owner id field
func (f LogFields) WithOwner(ownerID int64) LogFields {
	f[FieldOwnerID] = ownerID
	return f
}

// WithRecord adds record-related fields
func (f LogFields) WithRecord(id int64, amountCents int64, category, entryDate string) LogFields {
	f[FieldRecordID] = id
	f[FieldAmountCents] = amountCents
	f[FieldCategory] = category
	f[FieldEntryDate] = entryDate
	return f
}

// WithGoal adds goal-related fields
func (f LogFields) WithGoal(id int64, category string, targetCents int64) LogFields {
	f[FieldGoalID] = id
	f[FieldCategory] = category
	f[FieldTargetCents] = targetCents
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
