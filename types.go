package erold

import "time"

// Task represents a unit of work within a tenant workspace.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskStatus classifies where a task sits in its lifecycle.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusDone       TaskStatus = "done"
)

// ValidTaskStatuses returns all valid task statuses.
func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusTodo,
		TaskStatusInProgress,
		TaskStatusBlocked,
		TaskStatusDone,
	}
}

// IsValid checks if the status is a valid task status.
func (s TaskStatus) IsValid() bool {
	for _, valid := range ValidTaskStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority ranks task urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid checks if the priority is a valid task priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskListParams filters a task listing.
type TaskListParams struct {
	Status   TaskStatus
	Assignee string
	Project  string
	Limit    int
}

// TaskCreateParams contains parameters for creating a task.
type TaskCreateParams struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TaskUpdateParams contains a partial task update.
// Zero-valued fields are omitted from the request.
type TaskUpdateParams struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
	Priority    Priority   `json:"priority,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Project represents a container grouping related tasks.
//
// The wire format labels the display name "title"; tool-facing callers
// see it as Name. projectFromWire and projectToWire translate between
// the two vocabularies.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status,omitempty"`
	Lead        string    `json:"lead,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectStats summarizes task progress within a project.
type ProjectStats struct {
	TotalTasks     int     `json:"total_tasks"`
	OpenTasks      int     `json:"open_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	OverdueTasks   int     `json:"overdue_tasks"`
	Progress       float64 `json:"progress"`
}

// ProjectCreateParams contains parameters for creating a project.
type ProjectCreateParams struct {
	Name        string
	Description string
	Lead        string
}

// ProjectUpdateParams contains a partial project update.
type ProjectUpdateParams struct {
	Name        string
	Description string
	Status      string
	Lead        string
}

// Knowledge represents a knowledge-base article.
type Knowledge struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KnowledgeListParams filters a knowledge-base listing.
type KnowledgeListParams struct {
	Category string
	Search   string
	Limit    int
}

// KnowledgeCreateParams contains parameters for creating an article.
type KnowledgeCreateParams struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// KnowledgeUpdateParams contains a partial article update.
type KnowledgeUpdateParams struct {
	Title    string   `json:"title,omitempty"`
	Content  string   `json:"content,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// VaultItemKind classifies stored credentials.
type VaultItemKind string

const (
	VaultKindPassword    VaultItemKind = "password"
	VaultKindAPIKey      VaultItemKind = "api_key"
	VaultKindCertificate VaultItemKind = "certificate"
	VaultKindSSHKey      VaultItemKind = "ssh_key"
	VaultKindNote        VaultItemKind = "note"
)

// IsValid checks if the kind is a valid vault item kind.
func (k VaultItemKind) IsValid() bool {
	switch k {
	case VaultKindPassword, VaultKindAPIKey, VaultKindCertificate, VaultKindSSHKey, VaultKindNote:
		return true
	}
	return false
}

// VaultItem represents a stored credential.
// Value is masked on list/get responses; RevealVaultItem returns it in
// the clear.
type VaultItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Kind      VaultItemKind `json:"kind"`
	Username  string        `json:"username,omitempty"`
	Value     string        `json:"value,omitempty"`
	URL       string        `json:"url,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// VaultItemCreateParams contains parameters for creating a vault item.
type VaultItemCreateParams struct {
	Name     string        `json:"name"`
	Kind     VaultItemKind `json:"kind"`
	Username string        `json:"username,omitempty"`
	Value    string        `json:"value"`
	URL      string        `json:"url,omitempty"`
	Notes    string        `json:"notes,omitempty"`
}

// VaultItemUpdateParams contains a partial vault item update.
type VaultItemUpdateParams struct {
	Name     string        `json:"name,omitempty"`
	Kind     VaultItemKind `json:"kind,omitempty"`
	Username string        `json:"username,omitempty"`
	Value    string        `json:"value,omitempty"`
	URL      string        `json:"url,omitempty"`
	Notes    string        `json:"notes,omitempty"`
}

// TechInfoEntry represents a technical reference record
// (infrastructure endpoints, service runbooks, environment details).
type TechInfoEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Content     string    `json:"content"`
	Environment string    `json:"environment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TechInfoCreateParams contains parameters for creating a tech info entry.
type TechInfoCreateParams struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Content     string `json:"content"`
	Environment string `json:"environment,omitempty"`
}

// TechInfoUpdateParams contains a partial tech info update.
type TechInfoUpdateParams struct {
	Name        string `json:"name,omitempty"`
	Category    string `json:"category,omitempty"`
	Content     string `json:"content,omitempty"`
	Environment string `json:"environment,omitempty"`
}

// Guideline represents a workspace working-agreement document.
type Guideline struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member represents a workspace member.
type Member struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

// ActivityEntry represents one event in the workspace activity feed.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Tenant represents a workspace the authenticated user can access.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// User represents the authenticated API user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WorkspaceContext is the briefing payload summarizing the current
// state of a tenant workspace.
type WorkspaceContext struct {
	TenantID       string          `json:"tenant_id"`
	TenantName     string          `json:"tenant_name"`
	OpenTasks      int             `json:"open_tasks"`
	ActiveProjects int             `json:"active_projects"`
	Members        int             `json:"members"`
	RecentActivity []ActivityEntry `json:"recent_activity,omitempty"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// Input limits enforced before a request is issued.
const (
	MaxTitleLength   = 200
	MaxContentLength = 20000
)
