// Package cookbook is the Composition Root for the cookbook catalog engine.
//
// It connects the core catalog logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Cookbook is a headless recipe catalog. It owns the authoritative ordered
// collection of recipe records, applies composable filter predicates to
// produce a derived view, computes coarse view-change operations between
// successive views, and persists the collection through a pluggable blob
// storage collaborator. Rendering, navigation, and widgets are left to the
// embedding application, which applies the change notifications the catalog
// emits.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Write-Through Persistence**: Every mutation saves the full collection atomically.
//   - **Composable Filters**: Search, category, and dietary criteria combined by AND.
//   - **Change Notifications**: Removed/Inserted/Changed ranges instead of full redraws.
//   - **Default Adapter (FS)**: One JSON or YAML slot file with atomic writes.
//   - **Extensible**: Other backends (SQL, S3, NoSQL) plug in via `core.Storage`.
//
// Usage:
//
//	// Open a catalog with functional options
//	cat, err := cookbook.Open(ctx, "./data",
//		cookbook.WithSlot("recipes"),
//		cookbook.WithLogger(logger),
//	)
//
//	// Add a recipe
//	id, err := cat.Add(ctx, cookbook.Recipe{Title: "Pasta", Category: "Main Course"})
package cookbook
