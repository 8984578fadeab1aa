package reconcile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmkit/changeset/pkg/reconcile"
	"github.com/osmkit/changeset/pkg/tags"
)

const agent = "editor/1.2.3"

func newReconciler(t *testing.T) reconcile.Reconciler {
	t.Helper()
	r, err := reconcile.New()
	require.NoError(t, err)
	return r
}

func TestReconcileSeedsFromHistory(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		LastComment: "resurveyed the park",
		LastSource:  "survey",
		Agent:       agent,
	})

	assert.Equal(t, "resurveyed the park", set[tags.Comment])
	assert.Equal(t, "survey", set[tags.Source])
	assert.Equal(t, agent, set[tags.CreatedBy])
}

func TestReconcileDatasetOverridesHistory(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		DatasetTags: map[string]string{"comment": "import run 7", "import": "yes"},
		LastComment: "stale comment",
		Agent:       agent,
	})

	assert.Equal(t, "import run 7", set[tags.Comment])
	assert.Equal(t, "yes", set["import"])
}

func TestReconcileSelectedChangesetWins(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		DatasetTags:   map[string]string{"comment": "from dataset", "locale": "en"},
		ChangesetTags: map[string]string{"comment": "from changeset"},
		Agent:         agent,
	})

	assert.Equal(t, "from changeset", set[tags.Comment])
	assert.Equal(t, "en", set["locale"])
}

func TestReconcileNoChangesetSelected(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		DatasetTags: map[string]string{"comment": "from dataset"},
		Agent:       agent,
	})

	assert.Equal(t, "from dataset", set[tags.Comment])
}

func TestReconcileAgentCumulative(t *testing.T) {
	r := newReconciler(t)

	in := reconcile.Input{
		ChangesetTags: map[string]string{tags.CreatedBy: "other-tool/9"},
		Agent:         agent,
	}
	set := r.Reconcile(in)
	assert.Equal(t, "other-tool/9;"+agent, set[tags.CreatedBy])

	// reconciling again with already-merged input appends nothing
	in.ChangesetTags = map[string]string{tags.CreatedBy: set[tags.CreatedBy]}
	set = r.Reconcile(in)
	assert.Equal(t, 1, strings.Count(set[tags.CreatedBy], agent))
}

func TestReconcileNeverKeepsEmptyValues(t *testing.T) {
	r := newReconciler(t)

	inputs := []reconcile.Input{
		{},
		{Agent: agent},
		{DatasetTags: map[string]string{"watch": "", "blank": "  "}, Agent: agent},
		{KeepCurrent: true, CurrentComment: "", CurrentSource: " ", Agent: agent},
		{LastComment: "", LastSource: "", Agent: agent},
	}

	for _, in := range inputs {
		set := r.Reconcile(in)
		for k, v := range set {
			assert.NotEmpty(t, strings.TrimSpace(v), "key %q has a blank value", k)
		}
	}
}

func TestReconcileKeepCurrentOverridesEverything(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		DatasetTags:    map[string]string{"comment": "from dataset", "source": "import"},
		ChangesetTags:  map[string]string{"comment": "from changeset"},
		LastComment:    "from history",
		LastSource:     "survey",
		Agent:          agent,
		KeepCurrent:    true,
		CurrentComment: "live comment",
		CurrentSource:  "live source",
	})

	assert.Equal(t, "live comment", set[tags.Comment])
	assert.Equal(t, "live source", set[tags.Source])
}

func TestReconcileAppendsHashtags(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		DatasetTags: map[string]string{tags.Hashtags: "foo;#bar;baz"},
		LastComment: "mapped the square",
		Agent:       agent,
	})

	assert.Equal(t, "mapped the square #foo #bar #baz", set[tags.Comment])
	// the hashtags tag itself survives as changeset metadata
	assert.Equal(t, "foo;#bar;baz", set[tags.Hashtags])
}

func TestReconcileHashtagsWithKeepCurrent(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		DatasetTags:    map[string]string{tags.Hashtags: "mapparty"},
		KeepCurrent:    true,
		CurrentComment: "live comment",
		Agent:          agent,
	})

	assert.Equal(t, "live comment #mapparty", set[tags.Comment])
}

func TestReconcileEmptyAgentLeavesCreatedByAlone(t *testing.T) {
	r := newReconciler(t)

	set := r.Reconcile(reconcile.Input{
		DatasetTags: map[string]string{tags.CreatedBy: "other-tool/9"},
	})

	assert.Equal(t, "other-tool/9", set[tags.CreatedBy])
}
