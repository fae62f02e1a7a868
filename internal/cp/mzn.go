// Package cp realizes the constraint model as a MiniZinc instance: one
// declarative period-assignment model whose symmetry-breaking, implied
// constraints and fairness objective are toggled through data flags, plus a
// generated .dzn data file carrying n and the fixed pairing tables.
package cp

// periodModel decides, per (week, game), the period of each fixed pairing
// and whether its home/away orientation is kept. The decision variants
// minimize a constant zero objective so every backend reports completeness
// the same way.
const periodModel = `% Period assignment over a fixed round-robin pairing structure.
include "alldifferent.mzn";

int: n;
int: weeks = n - 1;
int: periods = n div 2;
int: use_sb;
int: use_ic;
int: use_opt;
int: anchor_game;
array[1..weeks, 1..periods] of int: home;
array[1..weeks, 1..periods] of int: away;

array[1..weeks, 1..periods] of var 1..periods: slot;
array[1..weeks, 1..periods] of var bool: keep;

% Games of one week occupy distinct periods.
constraint forall(w in 1..weeks)(
  alldifferent([slot[w, g] | g in 1..periods])
);

% Each team visits a period at most twice across the weeks.
constraint forall(t in 1..n, p in 1..periods)(
  sum(w in 1..weeks, g in 1..periods
      where home[w, g] == t \/ away[w, g] == t)(slot[w, g] == p) <= 2
);

% Redundant strengthening: no three consecutive weeks in one period.
constraint use_ic == 0 \/ forall(t in 1..n, w in 1..weeks - 2, p in 1..periods)(
  sum(w2 in w..w + 2, g in 1..periods
      where home[w2, g] == t \/ away[w2, g] == t)(slot[w2, g] == p) <= 2
);

% Anchor: pin team 1's week-1 game to period 1.
constraint use_sb == 0 \/ slot[1, anchor_game] == 1;

% Home counts under the chosen orientation.
array[1..n] of var 0..weeks: homes;
constraint forall(t in 1..n)(
  homes[t] == sum(w in 1..weeks, g in 1..periods)(
    (home[w, g] == t /\ keep[w, g]) \/ (away[w, g] == t /\ not keep[w, g])
  )
);

array[1..n] of var 0..weeks: diff;
constraint forall(t in 1..n)(
  diff[t] >= homes[t] - (weeks - homes[t]) /\
  diff[t] >= (weeks - homes[t]) - homes[t]
);

% Decision variants keep the generator orientation and a constant objective.
constraint use_opt == 1 \/ forall(w in 1..weeks, g in 1..periods)(keep[w, g]);

var 0..weeks: objective;
constraint objective == (if use_opt == 1 then max(t in 1..n)(diff[t]) else 0 endif);

solve minimize objective;

output ["obj " ++ show(objective) ++ "\n"] ++
       ["slot " ++ show(w) ++ " " ++ show(g) ++ " " ++ show(slot[w, g]) ++
        " " ++ show(bool2int(keep[w, g])) ++ "\n"
        | w in 1..weeks, g in 1..periods];
`
