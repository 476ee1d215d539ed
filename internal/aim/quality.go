package aim

import "github.com/Garsondee/Weapon-Sense/internal/fuzzy"

// Variable names of the aim-quality module.
const (
	VarSpeed      = "speed"
	VarDistance   = "distance"
	VarVisibility = "visibility"
	VarQuality    = "aim"
)

// NewQualityModule builds the rule base that rates how good a shot is likely
// to be from the target's top speed, the distance to the aim point and how
// long the target has been visible beyond the reaction time.
func NewQualityModule() (*fuzzy.Module, error) {
	b := fuzzy.NewBuilder()

	speed := b.Variable(VarSpeed)
	speedHigh := speed.LeftShoulder("speed_high", 0.6, 0.8, 1)
	speedMedium := speed.LeftShoulder("speed_medium", 0.3, 0.5, 0.7)
	speedLow := speed.LeftShoulder("speed_low", 0, 0.2, 0.4)

	dist := b.Variable(VarDistance)
	far := dist.LeftShoulder("far", 300, 500, 2000)
	medium := dist.LeftShoulder("medium", 100, 250, 400)
	near := dist.LeftShoulder("near", 0, 75, 150)

	vis := b.Variable(VarVisibility)
	visible := vis.LeftShoulder("visible", 0.6, 1, 200)
	halfVisible := vis.LeftShoulder("half_visible", 0.3, 0.5, 1)
	notVisible := vis.LeftShoulder("not_visible", -1, 0.2, 0.5)

	q := b.Variable(VarQuality)
	good := q.LeftShoulder("good", 0.7, 0.85, 1)
	mediumGood := q.LeftShoulder("medium_good", 0.45, 0.65, 0.75)
	mediumBad := q.LeftShoulder("medium_bad", 0.20, 0.35, 0.50)
	bad := q.LeftShoulder("bad", 0, 0.15, 0.25)

	// Rows: speed high/medium/low. Columns: far/medium/near.
	table := []struct {
		visibility *fuzzy.Set
		out        [3][3]*fuzzy.Set
	}{
		{visible, [3][3]*fuzzy.Set{
			{mediumBad, mediumGood, mediumGood},
			{mediumBad, mediumGood, good},
			{mediumGood, good, good},
		}},
		{halfVisible, [3][3]*fuzzy.Set{
			{bad, mediumBad, mediumBad},
			{mediumBad, mediumGood, mediumGood},
			{mediumGood, mediumGood, mediumGood},
		}},
		{notVisible, [3][3]*fuzzy.Set{
			{bad, bad, bad},
			{bad, bad, mediumBad},
			{bad, mediumBad, mediumBad},
		}},
	}
	speeds := [3]*fuzzy.Set{speedHigh, speedMedium, speedLow}
	dists := [3]*fuzzy.Set{far, medium, near}
	for _, row := range table {
		for i, s := range speeds {
			for j, d := range dists {
				b.Rule(fuzzy.And(s, d, row.visibility), row.out[i][j])
			}
		}
	}
	return b.Build()
}
