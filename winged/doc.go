/*
Package winged implements a winged-edge triangle mesh.

Every edge knows its two vertices, the faces on its left and right, and the
predecessor/successor edges on each side. The left face traverses an edge from
Vertex1 to Vertex2, the right face from Vertex2 to Vertex1.

Per-vertex positions and normals, and the triangle index buffer, live in dense
buffers owned by the Mesh and addressed by entity index. Entity indices are
stable for the lifetime of a mesh: entities are only ever appended.
*/
package winged
