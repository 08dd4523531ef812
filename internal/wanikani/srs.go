package wanikani

import "fmt"

// SRSStage is the spaced repetition stage of an assignment, from 0 (locked) to 9 (burned).
type SRSStage int

const (
	SRSStageLocked SRSStage = iota
	SRSStageApprentice1
	SRSStageApprentice2
	SRSStageApprentice3
	SRSStageApprentice4
	SRSStageGuru1
	SRSStageGuru2
	SRSStageMaster
	SRSStageEnlightened
	SRSStageBurned
)

func (s SRSStage) String() string {
	switch {
	case s == SRSStageLocked:
		return "Locked"
	case s >= SRSStageApprentice1 && s <= SRSStageApprentice4:
		return fmt.Sprintf("Apprentice %d", s-SRSStageApprentice1+1)
	case s == SRSStageGuru1 || s == SRSStageGuru2:
		return fmt.Sprintf("Guru %d", s-SRSStageGuru1+1)
	case s == SRSStageMaster:
		return "Master"
	case s == SRSStageEnlightened:
		return "Enlightened"
	case s == SRSStageBurned:
		return "Burned"
	default:
		return fmt.Sprintf("SRSStage(%d)", int(s))
	}
}

// Group returns the stage name without the sub-level, such as "Apprentice" for Apprentice 3.
func (s SRSStage) Group() string {
	switch {
	case s >= SRSStageApprentice1 && s <= SRSStageApprentice4:
		return "Apprentice"
	case s == SRSStageGuru1 || s == SRSStageGuru2:
		return "Guru"
	default:
		return s.String()
	}
}
