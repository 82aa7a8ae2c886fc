package vectorcade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Projectile3D ---

func TestProjectile3DExpires(t *testing.T) {
	p := NewProjectile3D(Vec3{}, Vec3{0, 0, -1}, 100, 50)
	require.True(t, p.Alive)
	p.Update(1)
	assert.False(t, p.Alive)
	assert.Equal(t, float32(100), p.Traveled)
}

func TestProjectile3DMoves(t *testing.T) {
	p := NewProjectile3D(Vec3{1, 0, 0}, Vec3{0, 0, -4}, 10, 100)
	assert.Equal(t, Vec3{0, 0, -1}, p.Dir, "direction is normalized")
	p.Update(0.5)
	assert.True(t, p.Alive)
	assert.Equal(t, Vec3{1, 0, -5}, p.Pos)
	assert.Equal(t, float32(5), p.Traveled)
}

func TestProjectile3DDeadIgnoresUpdate(t *testing.T) {
	p := NewProjectile3D(Vec3{}, Vec3{1, 0, 0}, 10, 100)
	p.Kill()
	p.Update(1)
	assert.Equal(t, Vec3{}, p.Pos)
	assert.Equal(t, float32(0), p.Traveled)
}

func TestProjectile3DZeroDirection(t *testing.T) {
	p := NewProjectile3D(Vec3{}, Vec3{}, 10, 100)
	assert.Equal(t, Vec3{}, p.Dir)
	p.Update(1)
	assert.Equal(t, Vec3{}, p.Pos)
	assert.True(t, p.Alive, "still accrues distance")
	assert.Equal(t, float32(10), p.Traveled)
}

func TestProjectile3DHitsSphere(t *testing.T) {
	p := NewProjectile3D(Vec3{0, 0, -5}, Vec3{0, 0, -1}, 1, 100)
	assert.True(t, p.HitsSphere(Vec3{0, 0, -5.5}, 1))
	assert.False(t, p.HitsSphere(Vec3{0, 0, -8}, 1))
	p.Kill()
	assert.False(t, p.HitsSphere(Vec3{0, 0, -5}, 1), "dead projectiles never hit")
}

// --- Projectile2D ---

func TestProjectile2DLifetime(t *testing.T) {
	p := NewProjectile2D(Vec2{}, Vec2{1, 0}, 1.0)
	p.Update(0.5)
	assert.True(t, p.Alive)
	p.Update(0.6)
	assert.False(t, p.Alive)
}

func TestProjectile2DImmortal(t *testing.T) {
	p := NewProjectile2D(Vec2{}, Vec2{2, 1}, 0)
	for i := 0; i < 100; i++ {
		p.Update(1)
	}
	assert.True(t, p.Alive)
	assert.Equal(t, Vec2{200, 100}, p.Pos)
}

func TestProjectile2DHitsCircle(t *testing.T) {
	p := NewProjectile2D(Vec2{1, 0}, Vec2{}, 0)
	assert.True(t, p.HitsCircle(Vec2{}, 1), "on the edge")
	assert.False(t, p.HitsCircle(Vec2{3, 0}, 1))
	p.Kill()
	assert.False(t, p.HitsCircle(Vec2{1, 0}, 5))
}

// --- batch ---

func TestUpdateProjectiles3DCompacts(t *testing.T) {
	ps := []Projectile3D{
		NewProjectile3D(Vec3{0, 0, 0}, Vec3{0, 0, -1}, 10, 5),
		NewProjectile3D(Vec3{1, 0, 0}, Vec3{0, 0, -1}, 10, 100),
		NewProjectile3D(Vec3{2, 0, 0}, Vec3{0, 0, -1}, 10, 5),
		NewProjectile3D(Vec3{3, 0, 0}, Vec3{0, 0, -1}, 10, 100),
	}
	out := UpdateProjectiles3D(ps, 1)
	require.Len(t, out, 2)
	assert.Equal(t, float32(1), out[0].Pos[0])
	assert.Equal(t, float32(3), out[1].Pos[0])
	assert.Equal(t, Projectile3D{}, ps[3], "tail is cleared")
}

func TestUpdateProjectiles2DCompacts(t *testing.T) {
	ps := []Projectile2D{
		NewProjectile2D(Vec2{0, 0}, Vec2{}, 0),
		NewProjectile2D(Vec2{1, 0}, Vec2{}, 0.5),
		NewProjectile2D(Vec2{2, 0}, Vec2{}, 2),
	}
	out := UpdateProjectiles2D(ps, 1)
	require.Len(t, out, 2)
	assert.Equal(t, float32(0), out[0].Pos[0])
	assert.Equal(t, float32(2), out[1].Pos[0])
	assert.InDelta(t, 1, out[1].Lifetime, eps)
}

func TestUpdateProjectilesEmpty(t *testing.T) {
	assert.Empty(t, UpdateProjectiles3D(nil, 1))
	assert.Empty(t, UpdateProjectiles2D(nil, 1))
}
