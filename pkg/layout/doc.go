// Package layout computes justified-row layouts for image galleries.
//
// Given a measured container width and an ordered list of images with
// intrinsic pixel dimensions, the engine partitions the images into rows
// and scales each row so it exactly fills the container width, keeping
// row heights close to a configured target. Narrow containers fall back
// to a single-column layout, and a trailing row that cannot be stretched
// without leaving the height tolerance is left short ("widow") together
// with the filler geometry needed to pad it.
//
// # Pipeline position
//
// The engine sits between scanning and rendering:
//
//	manifest := scan.Scan(ctx, dir)            // intrinsic dimensions
//	result, err := layout.Layout(w, imgs, cfg) // rows + boxes + widows
//	sink.RenderHTML(result, ...)               // boxes → markup
//
// # Determinism
//
// Every function in this package is a pure function of its inputs. There
// is no cached or shared state: a new container width observation simply
// produces a new Result that replaces the previous one.
package layout
