package world

import (
	"fmt"

	"github.com/cory-johannsen/castle/internal/game/enemy"
	"github.com/cory-johannsen/castle/internal/game/entity"
)

// KillStatus is the terminal state of a kill attempt.
type KillStatus int

const (
	// KillSuccess means the enemy died.
	KillSuccess KillStatus = iota
	// KillFailure means the attacker died, or was already dead.
	KillFailure
	// NoEnemy means no enemy matched the target.
	NoEnemy
	// AlreadyDead means the target was dead before the fight; nothing changed.
	AlreadyDead
)

// String returns a short lowercase name for the status.
func (s KillStatus) String() string {
	switch s {
	case KillSuccess:
		return "success"
	case KillFailure:
		return "failure"
	case NoEnemy:
		return "no_enemy"
	case AlreadyDead:
		return "already_dead"
	default:
		return fmt.Sprintf("kill_status(%d)", int(s))
	}
}

// KillEnemy fights the first enemy named name, ignoring case, until one side dies.
//
// Postcondition: see resolve.
func (r *Room) KillEnemy(name string, attacker entity.Combatant) KillStatus {
	return r.KillEnemyAt(r.enemyIndex(name), attacker)
}

// KillEnemyAt fights the enemy at position i of Enemies until one side dies.
func (r *Room) KillEnemyAt(i int, attacker entity.Combatant) KillStatus {
	if i < 0 || i >= len(r.enemies) {
		return NoEnemy
	}
	return resolve(r.enemies[i], attacker)
}

// resolve runs the kill loop. The attacker strikes first each round; the enemy
// strikes back only while still alive.
//
// Postcondition: AlreadyDead leaves both sides untouched; KillFailure leaves the
// enemy alive with its guarded item still guarded; KillSuccess leaves the enemy dead.
func resolve(e *enemy.Enemy, attacker entity.Combatant) KillStatus {
	if e.IsDead() {
		return AlreadyDead
	}
	for !attacker.IsDead() && !e.IsDead() {
		attacker.DealDamage(e)
		if !e.IsDead() {
			e.DealDamage(attacker)
		}
	}
	if attacker.IsDead() {
		return KillFailure
	}
	return KillSuccess
}
