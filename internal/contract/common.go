package contract

import "github.com/lenacroft/tempo/internal/app"

type BlockView = app.BlockView

type UnplacedView = app.UnplacedView

type ConflictView = app.ConflictView

type OverflowView = app.OverflowView

type MoveView = app.MoveView

type CapacityView = app.CapacityView
