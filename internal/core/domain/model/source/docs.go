// Package source models the three order tables the delivery engine reads from:
// regular orders, custom fabrication orders and custom design orders.
//
// Their schemas differ, so they are represented as a tagged union: Record is
// implemented only by StandardOrder, CustomFabricationOrder and CustomDesignOrder,
// and Ref (Kind + opaque ID) identifies a row across all of them.
package source
