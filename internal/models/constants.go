package models

// ============================================================================
// COLUMN CONSTANTS
// ============================================================================

// NumColumns is the number of kanban columns, one per status
const NumColumns = 3

// ============================================================================
// DEFAULTS
// ============================================================================

// DefaultPriority is preselected in the create form
const DefaultPriority = PriorityMedium

// DefaultStatus is the status of newly created tasks
const DefaultStatus = StatusBacklog
