package game

func (r *Room) missiles(o Owner) *Store[Missile] {
	if o == OwnerPlayer {
		return r.PlayerMissiles
	}
	return r.AttackMissiles
}

// detonate turns m into an explosion and tombstones it in its owner's collection.
// Explosions added here are not visited by a Store walk already in progress.
func (r *Room) detonate(m *Missile) {
	e := m.Detonate(r.ids.NewEntity(), r.Params, r.rng)
	if e == nil {
		return
	}
	r.missiles(m.Owner).Remove(m.ID)
	r.Explosions.Add(e.ID, e)
	r.stats.Detonations++
}

// intercept detonates a missile hit by a collision check.
func (r *Room) intercept(m *Missile) {
	m.Intercept()
	r.detonate(m)
}

func spawnAttackers(r *Room) {
	now := r.Clock.Now()
	if allDestroyed(r.Cities) {
		r.AttackMissiles.Each(func(_ EntityID, m *Missile) {
			r.intercept(m)
		})
		return
	}
	start, target, ok := r.Spawner.Spawn(now, r.AttackMissiles.Len(), r.Cities, r.Params, r.rng)
	if !ok {
		return
	}
	id := r.ids.NewEntity()
	r.AttackMissiles.Add(id, NewMissile(id, OwnerAttacker, NoSilo, start, target, r.Params.MissileRadius))
	r.stats.AttackersSpawned++
}

func updateMissiles(r *Room) {
	steps := r.Params.StepsPerTick
	for _, store := range []*Store[Missile]{r.PlayerMissiles, r.AttackMissiles} {
		store.Each(func(_ EntityID, m *Missile) {
			if m.Advance(steps) {
				r.detonate(m)
			}
		})
	}
}

// resolveCollisions runs the three intercept passes over the collections as they
// stand after movement. A missile removed by an earlier check is skipped by every
// later one.
func resolveCollisions(r *Room) {
	threshold := r.Params.InterceptThreshold

	r.PlayerMissiles.Each(func(_ EntityID, pm *Missile) {
		r.AttackMissiles.Each(func(_ EntityID, am *Missile) {
			if pm.State == MissileRemoved {
				return
			}
			if pm.InRange(am, threshold) {
				r.intercept(pm)
				r.intercept(am)
				r.stats.Intercepts++
			}
		})
	})

	r.Explosions.Each(func(_ EntityID, e *Explosion) {
		r.AttackMissiles.Each(func(_ EntityID, am *Missile) {
			if e.InRange(am.Pos) {
				r.intercept(am)
				r.stats.Intercepts++
			}
		})
	})

	r.Explosions.Each(func(_ EntityID, e *Explosion) {
		if e.CausedByPlayer {
			return
		}
		for _, c := range r.Cities {
			if e.InMaxRange(c.Pos) && c.Damage(r.rng) {
				r.stats.BuildingsLost++
			}
		}
	})

	r.PlayerMissiles.Sweep()
	r.AttackMissiles.Sweep()
}

func updateExplosions(r *Room) {
	r.Explosions.Each(func(id EntityID, e *Explosion) {
		if !e.Update() {
			r.Explosions.Remove(id)
		}
	})
	r.Explosions.Sweep()
}

func updateSilos(r *Room) {
	now := r.Clock.Now()
	for _, s := range r.Silos {
		s.Reload(now, r.Params.ReloadMs)
	}
}

func updateCities(r *Room) {
	now := r.Clock.Now()
	for _, c := range r.Cities {
		if c.Update(now, r.Params.RepairMs) {
			r.stats.Repairs++
		}
	}
}

func allDestroyed(cities []*City) bool {
	for _, c := range cities {
		if !c.Destroyed {
			return false
		}
	}
	return true
}
