// Package selection holds the validated data selection behind the dashboard:
// a year range inside the dataset bounds, a smoothing window size and a
// polynomial order that must stay below the window size.
//
// Changes go through Model.Apply, which validates the complete candidate
// selection before committing it. A rejected change returns a
// *ValidationError and leaves the model exactly as it was.
package selection
