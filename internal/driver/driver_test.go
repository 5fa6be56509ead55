package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const pickUpDomain = `
(define (domain blocks)
  (:predicates (ontable ?x) (clear ?x) (handempty) (holding ?x))
  (:action pick-up
    :parameters (?x)
    :precondition (and (ontable ?x) (clear ?x) (handempty))
    :effect (and (holding ?x) (not (ontable ?x)) (not (clear ?x)) (not (handempty)))))
`

const pickUpProblem = `
(define (problem pick-a)
  (:domain blocks)
  (:objects a)
  (:init (ontable a) (clear a) (handempty))
  (:goal (holding a)))
`

func TestPlanBFSSolvesPickUp(t *testing.T) {
	opts := DefaultOptions()
	res, err := Plan(strings.NewReader(pickUpDomain), strings.NewReader(pickUpProblem), opts)
	require.NoError(t, err)
	require.True(t, res.Solved)
	require.Equal(t, []string{"(pick-up a)"}, res.Plan)
}

func TestPlanAStarLandmarkSolvesPickUp(t *testing.T) {
	opts := DefaultOptions()
	opts.Search = AStar
	opts.Heuristic = Landmark
	res, err := Plan(strings.NewReader(pickUpDomain), strings.NewReader(pickUpProblem), opts)
	require.NoError(t, err)
	require.True(t, res.Solved)
	require.Equal(t, []string{"(pick-up a)"}, res.Plan)
}

func TestPlanMalformedDomainIsAnError(t *testing.T) {
	opts := DefaultOptions()
	_, err := Plan(strings.NewReader("not pddl at all"), strings.NewReader(pickUpProblem), opts)
	require.Error(t, err)
}
