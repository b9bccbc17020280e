package criteria

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Criteria is the set of thresholds a residue-pair scan quad must satisfy.
type Criteria struct {
	// MaxSquaredViewDist bounds ‖view_A - view_B‖², derived by squaring the
	// Å distance the "dist" key gives.
	MaxSquaredViewDist float64
	// RequireMatchingDirection is the "dirn" require-matching-direction
	// flag: when set, a quad's two ordered pairs must run the same way
	// along their respective sequences.
	RequireMatchingDirection bool
	// MinSeqSep is the minimum |i-j| required of each pair, taken from
	// "index_dist"'s absolute value.
	MinSeqSep int
	// MaxFrameRotationAngle bounds angle(frame_quat_A, frame_quat_B), in
	// radians, parsed from "frame_ang" in degrees.
	MaxFrameRotationAngle float64
	// MaxPhiDiff bounds the larger of the from-residue and to-residue
	// wrapped phi differences, in radians, parsed from "phi_ang" in
	// degrees. The same tolerance applies to both residues of a pair.
	MaxPhiDiff float64
	// MaxPsiDiff bounds the larger of the from-residue and to-residue
	// wrapped psi differences, in radians, parsed from "psi_ang" in
	// degrees. The same tolerance applies to both residues of a pair.
	MaxPsiDiff float64
}

// Default returns the classical-SSAP-derived defaults: a 20Å view-distance
// cutoff (d²=400, matching ssap.DefaultConfig's context-score cutoff), a
// 30° frame-rotation tolerance, 45° phi/psi tolerances, no direction
// constraint, and a minimum sequence separation of 2.
func Default() Criteria {
	return Criteria{
		MaxSquaredViewDist:       400,
		RequireMatchingDirection: false,
		MinSeqSep:                2,
		MaxFrameRotationAngle:    30 * math.Pi / 180,
		MaxPhiDiff:               45 * math.Pi / 180,
		MaxPsiDiff:               45 * math.Pi / 180,
	}
}

// Parse parses a comma-separated key=value (or key_co=value) criteria
// string, e.g. "dist=20,dirn=1,index_dist=-2,frame_ang=30,phi_ang=45,psi_ang=45".
// Unspecified keys keep Default's value. dist is given in Å and squared on
// parse; frame_ang/phi_ang/psi_ang are given in degrees and converted to
// radians; index_dist is given as a negative integer whose absolute value
// becomes MinSeqSep; dirn is 0 or 1.
func Parse(s string) (Criteria, error) {
	c := Default()
	s = strings.TrimSpace(s)
	if s == "" {
		return c, nil
	}
	for _, term := range strings.Split(s, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		kv := strings.SplitN(term, "=", 2)
		if len(kv) != 2 {
			return Criteria{}, fmt.Errorf("criteria.Parse(%q): term %q: %w", s, term, ErrMalformedTerm)
		}
		key := strings.TrimSuffix(strings.TrimSpace(kv[0]), "_co")
		val := strings.TrimSpace(kv[1])

		switch key {
		case "dist":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return Criteria{}, fmt.Errorf("criteria.Parse: key %q: %w", key, ErrBadValue)
			}
			c.MaxSquaredViewDist = f * f
		case "dirn":
			n, err := strconv.Atoi(val)
			if err != nil || (n != 0 && n != 1) {
				return Criteria{}, fmt.Errorf("criteria.Parse: key %q: %w", key, ErrBadValue)
			}
			c.RequireMatchingDirection = n == 1
		case "index_dist":
			n, err := strconv.Atoi(val)
			if err != nil {
				return Criteria{}, fmt.Errorf("criteria.Parse: key %q: %w", key, ErrBadValue)
			}
			if n > 0 {
				n = -n
			}
			c.MinSeqSep = -n
		case "frame_ang":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return Criteria{}, fmt.Errorf("criteria.Parse: key %q: %w", key, ErrBadValue)
			}
			c.MaxFrameRotationAngle = f * math.Pi / 180
		case "phi_ang":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return Criteria{}, fmt.Errorf("criteria.Parse: key %q: %w", key, ErrBadValue)
			}
			c.MaxPhiDiff = f * math.Pi / 180
		case "psi_ang":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return Criteria{}, fmt.Errorf("criteria.Parse: key %q: %w", key, ErrBadValue)
			}
			c.MaxPsiDiff = f * math.Pi / 180
		default:
			return Criteria{}, fmt.Errorf("criteria.Parse: %q: %w", key, ErrUnknownKey)
		}
	}
	return c, nil
}
