/*
Package scheduling contains the background-processing components of
gobag.

  - taskqueue: a fixed pool of workers draining a shared backlog
  - feeder: cron-driven producers that push items into a task queue
*/
package scheduling
