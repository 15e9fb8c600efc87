package dto

// ImportDefaults are the character and location assigned to reports that
// carry none of their own. Bulk paths use the roster default or the
// configured fallback.
type ImportDefaults struct {
	Character string
	Location  string
}

type RawReport struct {
	Name string
	Text string
}

type ImportInput struct {
	Reports         []RawReport
	Defaults        ImportDefaults
	AllowDuplicates bool
}

type ImportFilesInput struct {
	Paths           []string
	Defaults        ImportDefaults
	AllowDuplicates bool
}

type ImportStatus string

const (
	StatusImported  ImportStatus = "imported"
	StatusRejected  ImportStatus = "rejected"
	StatusDuplicate ImportStatus = "duplicate"
	StatusFailed    ImportStatus = "failed"
)

// ImportResult keeps "not a report" (rejected) apart from storage errors
// (failed). Err is set for rejected and failed results.
type ImportResult struct {
	Name   string
	Status ImportStatus
	HuntID int64
	Err    error
}

type ImportOutput struct {
	RunID      string
	Results    []ImportResult
	Imported   int
	Rejected   int
	Duplicates int
	Failed     int
}

type MonsterOutput struct {
	Name  string
	Count int64
}

type KillOutput struct {
	Name  string
	Total int64
}

type ParseOutput struct {
	IsSession   bool
	Date        string
	StartTime   string
	EndTime     string
	DurationMin int
	RawXP       int64
	XP          int64
	Loot        int64
	Supplies    int64
	Balance     int64
	Payment     int64
	Damage      int64
	Healing     int64
	Monsters    []MonsterOutput
}

type HuntOutput struct {
	ID          int64
	Character   string
	Location    string
	Date        string
	StartTime   string
	EndTime     string
	DurationMin int
	RawXP       int64
	XP          int64
	Loot        int64
	Supplies    int64
	Balance     int64
	Payment     int64
	Damage      int64
	Healing     int64
	Monsters    []MonsterOutput
	RawText     string
}

// FilterInput narrows hunt queries. Character "" or "all" matches every
// character; LocationLike is a substring match.
type FilterInput struct {
	Character      string
	LocationLike   string
	DateStart      string
	DateEnd        string
	ExactDate      string
	ExactStartTime string
}

// EditInput replaces every editable field of one hunt. Monsters nil keeps
// the stored kill list.
type EditInput struct {
	ID          int64
	Character   string
	Location    string
	Date        string
	StartTime   string
	EndTime     string
	DurationMin int
	RawXP       int64
	XP          int64
	Loot        int64
	Supplies    int64
	Balance     int64
	Damage      int64
	Healing     int64
	Monsters    []MonsterOutput
}

// BatchEditInput applies the non-nil fields to every listed hunt.
type BatchEditInput struct {
	IDs       []int64
	Character *string
	Location  *string
}

type ExportInput struct {
	IDs []int64
	Dir string
}

type ExportOutput struct {
	Paths []string
}

type CheckOutput struct {
	Dir     string
	Pending []string
}

type WatchInput struct {
	Dir      string
	Defaults ImportDefaults
}

type CharacterOutput struct {
	Name      string
	IsDefault bool
}
