// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/lingo/attrs"
	"github.com/katalvlaran/lingo/lingo"
	"github.com/katalvlaran/lingo/preprocess"
	"github.com/katalvlaran/lingo/reduce"
	"github.com/katalvlaran/lingo/vsm"
)

// weighting is a configurable term weighting.
type weighting interface {
	attrs.Typed
	build() vsm.TermWeighting
}

// factorization is a configurable factorizer.
type factorization interface {
	attrs.Typed
	build() reduce.Factorizer
}

type tfAttrs struct{}

func (*tfAttrs) Fields() []attrs.Field { return nil }
func (*tfAttrs) TypeName() string { return vsm.NameTF }
func (*tfAttrs) build() vsm.TermWeighting { return vsm.TF{} }

type logTfIdfAttrs struct{}

func (*logTfIdfAttrs) Fields() []attrs.Field { return nil }
func (*logTfIdfAttrs) TypeName() string { return vsm.NameLogTfIdf }
func (*logTfIdfAttrs) build() vsm.TermWeighting { return vsm.LogTfIdf{} }

type linearTfIdfAttrs struct{}

func (*linearTfIdfAttrs) Fields() []attrs.Field { return nil }
func (*linearTfIdfAttrs) TypeName() string { return vsm.NameLinearTfIdf }
func (*linearTfIdfAttrs) build() vsm.TermWeighting { return vsm.LinearTfIdf{} }

type svdAttrs struct{}

func (*svdAttrs) Fields() []attrs.Field { return nil }
func (*svdAttrs) TypeName() string { return reduce.NameSVD }
func (*svdAttrs) build() reduce.Factorizer { return reduce.SVD{} }

type eigenAttrs struct{ reduce.Eigen }

func (e *eigenAttrs) Fields() []attrs.Field {
	return []attrs.Field{
		attrs.Float("tolerance", &e.Tolerance, attrs.Min(0.0)),
		attrs.Int("maxRotations", &e.MaxRotations, attrs.Min(0)),
	}
}
func (*eigenAttrs) TypeName() string { return reduce.NameEigen }
func (e *eigenAttrs) build() reduce.Factorizer { return e.Eigen }

type nmfAttrs struct {
	reduce.NMF
	seed int
}

func (n *nmfAttrs) Fields() []attrs.Field {
	return []attrs.Field{
		attrs.Int("maxIterations", &n.MaxIterations, attrs.Min(0)),
		attrs.Float("stopThreshold", &n.StopThreshold, attrs.Min(0.0)),
		attrs.Int("seed", &n.seed),
	}
}
func (*nmfAttrs) TypeName() string { return reduce.NameNMF }
func (n *nmfAttrs) build() reduce.Factorizer {
	f := n.NMF
	f.Seed = int64(n.seed)
	return f
}

// Weightings lists the accepted termWeighting types.
var Weightings = attrs.NewRegistry().
	Register(vsm.NameTF, func() attrs.Typed { return &tfAttrs{} }).
	Register(vsm.NameLogTfIdf, func() attrs.Typed { return &logTfIdfAttrs{} }).
	Register(vsm.NameLinearTfIdf, func() attrs.Typed { return &linearTfIdfAttrs{} })

// Factorizations lists the accepted factorization types.
var Factorizations = attrs.NewRegistry().
	Register(reduce.NameSVD, func() attrs.Typed { return &svdAttrs{} }).
	Register(reduce.NameEigen, func() attrs.Typed { return &eigenAttrs{} }).
	Register(reduce.NameNMF, func() attrs.Typed { return &nmfAttrs{NMF: reduce.DefaultNMF()} })

type preprocessingAttrs struct{ *preprocess.Options }

func (p preprocessingAttrs) Fields() []attrs.Field {
	return []attrs.Field{
		attrs.Int("minWordDf", &p.MinWordDF, attrs.Min(1)),
		attrs.Float("maxWordDfRatio", &p.MaxWordDFRatio, attrs.Above(0.0), attrs.Max(1.0)),
		attrs.Int("minPhraseDf", &p.MinPhraseDF, attrs.Min(1)),
		attrs.Int("maxPhraseLength", &p.MaxPhraseLength, attrs.Min(0)),
	}
}

type reducerAttrs struct{ *reduce.Options }

func (r reducerAttrs) Fields() []attrs.Field {
	return []attrs.Field{attrs.Float("rankTolerance", &r.RankTolerance, attrs.Min(0.0), attrs.Below(1.0))}
}

// paramsAttrs is the attribute view of lingo.Params.
type paramsAttrs struct {
	p             *lingo.Params
	preprocessing preprocessingAttrs
	reducer       reducerAttrs
	weighting     weighting
	factorization factorization
}

func (s *paramsAttrs) Fields() []attrs.Field {
	return []attrs.Field{
		attrs.Int("desiredClusterCount", &s.p.DesiredClusterCount, attrs.Min(1)),
		attrs.Float("minLabelScore", &s.p.MinLabelScore, attrs.Min(0.0), attrs.Max(1.0)),
		attrs.Float("minMembershipScore", &s.p.MinMembershipScore, attrs.Min(0.0), attrs.Max(1.0)),
		attrs.Bool("otherTopics", &s.p.OtherTopics),
		attrs.Object("preprocessing", &s.preprocessing, nil),
		attrs.Object("reducer", &s.reducer, nil),
		attrs.Object("termWeighting", &s.weighting, Weightings),
		attrs.Object("factorization", &s.factorization, Factorizations),
	}
}

// resolve copies the polymorphic choices back into the bound Params.
func (s *paramsAttrs) resolve() lingo.Params {
	s.p.TermWeighting = s.weighting.build()
	s.p.Factorizer = s.factorization.build()

	return *s.p
}
