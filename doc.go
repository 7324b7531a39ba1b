// Package argbind binds host values as positional parameters of SQL statements.
/*
Every value is resolved through an ordered chain of factories. The built-in factory looks up
an exact builder by the value kind, then binds enums by name, unwraps optionals and pointers,
and finally falls back to an untyped NULL. Durations are encoded into postgres intervals
eagerly, so sub-microsecond precision or overflow fail at bind time:

	args, err := argbind.Args(ctx, config.New(), 42, 90*time.Second, argbind.None[time.Duration]())
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, "INSERT INTO timers(id, period, pause) VALUES ($1, $2, $3)", args...)

Intervals read back from result columns scan into NullDuration.
*/
package argbind
