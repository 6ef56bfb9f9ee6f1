// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
)

// ErrUnknownDiscipline is the sentinel error wrapped by
// UnknownDisciplineError.
var ErrUnknownDiscipline = errors.New("unknown discipline")

// Discipline is a target-audience label from the closed set published in
// the typst package repository. Labels are kebab-case and matched exactly.
type Discipline string

// All disciplines.
const (
	DisciplineAgriculture     Discipline = "agriculture"
	DisciplineAnthropology    Discipline = "anthropology"
	DisciplineArchaeology     Discipline = "archaeology"
	DisciplineArchitecture    Discipline = "architecture"
	DisciplineBiology         Discipline = "biology"
	DisciplineBusiness        Discipline = "business"
	DisciplineChemistry       Discipline = "chemistry"
	DisciplineCommunication   Discipline = "communication"
	DisciplineComputerScience Discipline = "computer-science"
	DisciplineDesign          Discipline = "design"
	DisciplineDrawing         Discipline = "drawing"
	DisciplineEconomics       Discipline = "economics"
	DisciplineEducation       Discipline = "education"
	DisciplineEngineering     Discipline = "engineering"
	DisciplineFashion         Discipline = "fashion"
	DisciplineFilm            Discipline = "film"
	DisciplineGeography       Discipline = "geography"
	DisciplineGeology         Discipline = "geology"
	DisciplineHistory         Discipline = "history"
	DisciplineJournalism      Discipline = "journalism"
	DisciplineLaw             Discipline = "law"
	DisciplineLinguistics     Discipline = "linguistics"
	DisciplineLiterature      Discipline = "literature"
	DisciplineMathematics     Discipline = "mathematics"
	DisciplineMedicine        Discipline = "medicine"
	DisciplineMusic           Discipline = "music"
	DisciplinePainting        Discipline = "painting"
	DisciplinePhilosophy      Discipline = "philosophy"
	DisciplinePhotography     Discipline = "photography"
	DisciplinePhysics         Discipline = "physics"
	DisciplinePolitics        Discipline = "politics"
	DisciplinePsychology      Discipline = "psychology"
	DisciplineSociology       Discipline = "sociology"
	DisciplineTheater         Discipline = "theater"
	DisciplineTheology        Discipline = "theology"
	DisciplineTransportation  Discipline = "transportation"
)

// AllDisciplines lists every discipline, ordered alphabetically by label.
var AllDisciplines = []Discipline{
	DisciplineAgriculture,
	DisciplineAnthropology,
	DisciplineArchaeology,
	DisciplineArchitecture,
	DisciplineBiology,
	DisciplineBusiness,
	DisciplineChemistry,
	DisciplineCommunication,
	DisciplineComputerScience,
	DisciplineDesign,
	DisciplineDrawing,
	DisciplineEconomics,
	DisciplineEducation,
	DisciplineEngineering,
	DisciplineFashion,
	DisciplineFilm,
	DisciplineGeography,
	DisciplineGeology,
	DisciplineHistory,
	DisciplineJournalism,
	DisciplineLaw,
	DisciplineLinguistics,
	DisciplineLiterature,
	DisciplineMathematics,
	DisciplineMedicine,
	DisciplineMusic,
	DisciplinePainting,
	DisciplinePhilosophy,
	DisciplinePhotography,
	DisciplinePhysics,
	DisciplinePolitics,
	DisciplinePsychology,
	DisciplineSociology,
	DisciplineTheater,
	DisciplineTheology,
	DisciplineTransportation,
}

var disciplineSet = func() map[Discipline]bool {
	set := make(map[Discipline]bool, len(AllDisciplines))
	for _, d := range AllDisciplines {
		set[d] = true
	}
	return set
}()

// UnknownDisciplineError is returned when a string is not a known
// discipline label.
type UnknownDisciplineError struct {
	Value string
}

// Error implements the error interface.
func (e *UnknownDisciplineError) Error() string {
	return fmt.Sprintf("unknown discipline %q", e.Value)
}

// Unwrap returns ErrUnknownDiscipline so callers can use errors.Is for
// programmatic detection.
func (e *UnknownDisciplineError) Unwrap() error { return ErrUnknownDiscipline }

// ParseDiscipline matches s against the known discipline labels.
func ParseDiscipline(s string) (Discipline, error) {
	if !disciplineSet[Discipline(s)] {
		return "", &UnknownDisciplineError{Value: s}
	}
	return Discipline(s), nil
}

// String returns the kebab-case label.
func (d Discipline) String() string { return string(d) }

// MarshalText implements encoding.TextMarshaler.
func (d Discipline) MarshalText() ([]byte, error) { return []byte(d), nil }

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown
// labels.
func (d *Discipline) UnmarshalText(text []byte) error {
	parsed, err := ParseDiscipline(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
